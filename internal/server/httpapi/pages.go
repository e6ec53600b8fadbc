package httpapi

// Minimal server-rendered pages. The interesting surface is the JSON API;
// these exist so a browser session can be exercised end to end.

const loginPage = `<!DOCTYPE html>
<html>
<head><title>homesense - login</title></head>
<body>
<h1>Log in</h1>
<form method="post" action="/login">
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Log in</button>
</form>
<h2>Sign up</h2>
<form method="post" action="/signup">
  <label>Name <input type="text" name="name" required></label>
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <label>Personal ID <input type="text" name="pid"></label>
  <label>Location <input type="text" name="location"></label>
  <button type="submit">Sign up</button>
</form>
</body>
</html>
`

const dashboardPage = `<!DOCTYPE html>
<html>
<head><title>homesense - dashboard</title></head>
<body>
<h1>Welcome, %s</h1>
<p>Location: %s</p>
<p><a href="/devices">Devices</a></p>
<p><a href="/wardrobe">Wardrobe</a></p>
<form method="post" action="/logout"><button type="submit">Log out</button></form>
</body>
</html>
`

const devicesPageHeader = `<!DOCTYPE html>
<html>
<head><title>homesense - devices</title></head>
<body>
<h1>Devices</h1>
<form method="post" action="/register-device">
  <label>MAC address <input type="text" name="mac_address" required></label>
  <button type="submit">Register</button>
</form>
<ul>
`

const devicesPageFooter = `</ul>
<p><a href="/dashboard">Dashboard</a></p>
</body>
</html>
`

const wardrobePageHeader = `<!DOCTYPE html>
<html>
<head><title>homesense - wardrobe</title></head>
<body>
<h1>Wardrobe</h1>
<ul>
`

const wardrobePageFooter = `</ul>
<p><a href="/dashboard">Dashboard</a></p>
</body>
</html>
`
