package main

// @title           Inventário API
// @version         1.0
// @description     API de gestão de inventário e vendas

// @contact.name   API Support
// @contact.email  suporte@inventario-api.dev

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
