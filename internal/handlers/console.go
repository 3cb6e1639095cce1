package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET / serves a minimal browser console for trying queries by hand.
func Console(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(consoleHTML))
}

const consoleHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Postgres NL Agent</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 10px; }
        textarea { width: 100%; padding: 10px; margin: 5px 0; border: 1px solid #ddd; border-radius: 5px; }
        button { background: #007bff; color: white; padding: 10px 20px; border: none; border-radius: 5px; cursor: pointer; }
        button:hover { background: #0056b3; }
        .result { background: white; padding: 15px; margin: 10px 0; border-radius: 5px; border-left: 4px solid #007bff; }
        pre { overflow-x: auto; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Postgres Natural Language Agent</h1>
        <p>Ask questions about your database in natural language!</p>
        <textarea id="query" rows="3" placeholder="e.g., 'Show me all orders from last week' or 'How many customers do we have?'"></textarea>
        <button onclick="sendQuery()">Send Query</button>
        <div id="result"></div>
    </div>
    <script>
        async function sendQuery() {
            const query = document.getElementById('query').value.trim();
            if (!query) return;
            const response = await fetch('/query/text', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ query: query })
            });
            const result = await response.json();
            const resultDiv = document.getElementById('result');
            if (!response.ok) {
                resultDiv.innerHTML = '<div class="result"><strong>Error:</strong> ' + result.error + '</div>';
                return;
            }
            resultDiv.innerHTML = '<div class="result">' +
                '<p><strong>Generated SQL:</strong> <code>' + result.sql_generated + '</code></p>' +
                '<p><strong>Confidence:</strong> ' + (result.confidence * 100).toFixed(1) + '%</p>' +
                '<pre>' + JSON.stringify(result.result, null, 2) + '</pre>' +
                '<p><strong>Message:</strong> ' + result.message + '</p></div>';
        }
    </script>
</body>
</html>
`
