package handlers

import "net/http"

const indexHTML = `<html>
<head><title>Smart Waste Management API</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
h1 { color: #2c3e50; }
h2 { color: #3498db; }
code { background: #f4f4f4; padding: 2px 5px; border-radius: 3px; }
ul { list-style-type: none; padding-left: 20px; }
li { margin-bottom: 10px; }
a { color: #3498db; text-decoration: none; }
a:hover { text-decoration: underline; }
</style></head>
<body>
<h1>Smart Waste Management System API</h1>
<p>Version ` + apiVersion + `</p>
<h2>Available Endpoints:</h2>
<ul>
<li><code>GET /bins</code> - List all waste bins</li>
<li><code>GET /bins/{id}</code> - Get a specific bin by ID</li>
<li><code>POST /bins</code> - Add new waste bins</li>
<li><code>PUT /bins/{id}</code> - Update a bin's properties</li>
<li><code>DELETE /bins/{id}</code> - Delete a waste bin</li>
<li><code>POST /bins/collect-sensor-data</code> - Simulate sensor data collection</li>
<li><code>GET /optimize-route</code> - Get optimized collection route</li>
<li><code>GET /dashboard/stats</code> - Get dashboard statistics</li>
<li><code>GET /ws</code> - Live dashboard updates (WebSocket)</li>
<li><code>GET /health</code> - API health check</li>
</ul>
</body></html>`

// Index serves the HTML welcome page.
func Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(indexHTML))
	}
}
