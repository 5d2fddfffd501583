// Package docs embarca o documento OpenAPI servido em /docs/openapi.json.
// O arquivo é mantido à mão; a montagem automática ficou de fora de propósito.
package docs

import (
	_ "embed"
)

//go:embed openapi.json
var OpenAPI []byte

// SwaggerPage: casca mínima do Swagger UI apontando para o documento embarcado.
const SwaggerPage = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="utf-8" />
  <title>API CRUD Academia — Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({ url: "/docs/openapi.json", dom_id: "#swagger-ui" });
  </script>
</body>
</html>`
