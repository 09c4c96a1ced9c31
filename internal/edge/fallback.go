package edge

// placeholderImage is the synthetic inline image returned when an image
// request misses both cache and network.
const placeholderImage = `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300" viewBox="0 0 400 300"><rect width="400" height="300" fill="#f2f0ec"/><path d="M150 190l40-50 30 36 20-24 30 38z" fill="#c9c4bb"/><circle cx="165" cy="115" r="14" fill="#c9c4bb"/><text x="200" y="250" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#8a857c">image unavailable</text></svg>`

// offlinePage is served for navigations when both network and cache miss.
const offlinePage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Offline</title>
<style>
body { font-family: Georgia, serif; background: #f2f0ec; color: #3a372f;
       display: flex; align-items: center; justify-content: center;
       min-height: 100vh; margin: 0; }
main { text-align: center; max-width: 28rem; padding: 2rem; }
h1 { font-weight: normal; }
</style>
</head>
<body>
<main>
<h1>You are offline</h1>
<p>This page has not been saved for offline viewing yet.
Previously visited works are still available from your history.</p>
</main>
</body>
</html>`
