package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/memory"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/messaging"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/ecommerce-api/internal/interfaces/http"
)

const password = "secret123"

type captureMailer struct {
	body string
}

func (m *captureMailer) Send(_ context.Context, _, _, body string) error {
	m.body = body
	return nil
}

var resetToken = regexp.MustCompile(`The token is: ([0-9a-f-]{36})`)

type testAPI struct {
	app    *fiber.App
	mailer *captureMailer
}

// newTestAPI levanta la API completa sobre el adaptador en memoria.
func newTestAPI(t *testing.T, allowAdminSignup bool) *testAPI {
	t.Helper()
	s := memory.NewStore()
	users := memory.NewUserRepository(s)
	tokens := memory.NewUserTokenRepository(s)
	products := memory.NewProductRepository(s)
	orders := memory.NewOrderRepository(s)
	mailer := &captureMailer{}

	authUC := auth.NewAuthUseCase(users, tokens, mailer, auth.Config{
		JWT:              auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer},
		AllowAdminSignup: allowAdminSignup,
		ResetURLBase:     "http://localhost:7001/reset-password/",
	}, nil)

	app := apphttp.NewApp(apphttp.ServerConfig{AppName: "ecommerce-api-test"}, nil, apphttp.RouterDeps{
		AuthUC:    authUC,
		ProductUC: usecase.NewProductUseCase(products),
		OrderUC: usecase.NewOrderUseCase(orders, products, users,
			messaging.NoopPublisher{}, pdf.NewReceiptGenerator("Test Shop"), nil),
		UserUC:    usecase.NewUserUseCase(users, tokens),
		JWTSecret: testJWTSecret,
	})
	return &testAPI{app: app, mailer: mailer}
}

func (a *testAPI) raw(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// do ejecuta la petición y decodifica el cuerpo JSON.
func (a *testAPI) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	resp := a.raw(t, method, path, token, body)
	defer resp.Body.Close()
	out := map[string]any{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &out), "cuerpo: %s", data)
	}
	return resp.StatusCode, out
}

func (a *testAPI) register(t *testing.T, fullName, email, role string) {
	t.Helper()
	status, body := a.do(t, http.MethodPost, "/v1/auth/register", "", fiber.Map{
		"fullName": fullName, "email": email, "password": password, "role": role,
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", body)
}

func (a *testAPI) login(t *testing.T, email, pass string) string {
	t.Helper()
	status, body := a.do(t, http.MethodPost, "/v1/auth/login", "", fiber.Map{"email": email, "password": pass})
	require.Equal(t, http.StatusOK, status, "login: %v", body)
	token, _ := body["userToken"].(string)
	require.NotEmpty(t, token)
	return token
}

func (a *testAPI) createProduct(t *testing.T, token, name string, price float64) string {
	t.Helper()
	status, body := a.do(t, http.MethodPost, "/v1/products", token, fiber.Map{
		"name": name, "description": name + " description", "price": price,
	})
	require.Equal(t, http.StatusCreated, status, "create product: %v", body)
	return data(t, body)["_id"].(string)
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	require.True(t, ok, "se esperaba data objeto: %v", body)
	return d
}

func list(t *testing.T, body map[string]any) []any {
	t.Helper()
	d, ok := body["data"].([]any)
	require.True(t, ok, "se esperaba data lista: %v", body)
	return d
}

func TestE2E_AdminGestionaCatalogo(t *testing.T) {
	api := newTestAPI(t, true)
	api.register(t, "Admin", "admin@example.com", "admin")
	token := api.login(t, "admin@example.com", password)

	status, body := api.do(t, http.MethodPost, "/v1/products", token, fiber.Map{
		"name": "Coke", "description": "Cold drink", "price": 100,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Created", body["status"])
	assert.Equal(t, "Product created Successfully", body["message"])
	assert.Equal(t, float64(100), data(t, body)["price"])

	beerID := api.createProduct(t, token, "Beer", 200)

	status, body = api.do(t, http.MethodPut, "/v1/products/"+beerID, token, fiber.Map{
		"name": "Beer and Best", "description": "Cold beer", "price": 250,
	})
	require.Equal(t, http.StatusOK, status, "%v", body)
	assert.Equal(t, "Successful", body["message"])
	assert.Equal(t, "Beer and Best", data(t, body)["name"])
	assert.Equal(t, float64(250), data(t, body)["price"])

	status, body = api.do(t, http.MethodDelete, "/v1/products/"+beerID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Deleted Successfully", body["message"])

	status, body = api.do(t, http.MethodGet, "/v1/products", token, nil)
	require.Equal(t, http.StatusOK, status)
	items := list(t, body)
	require.Len(t, items, 1)
	assert.Equal(t, "Coke", items[0].(map[string]any)["name"])
	assert.Equal(t, float64(1), body["totalDocs"])
}

func TestE2E_UsuarioCompra(t *testing.T) {
	api := newTestAPI(t, true)
	api.register(t, "Admin", "admin@example.com", "admin")
	adminToken := api.login(t, "admin@example.com", password)
	cokeID := api.createProduct(t, adminToken, "Coke", 100)

	api.register(t, "Bob", "bob@example.com", "")
	token := api.login(t, "bob@example.com", password)

	status, body := api.do(t, http.MethodGet, "/v1/products", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list(t, body), 1)

	status, body = api.do(t, http.MethodGet, "/v1/products/"+cokeID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Coke", data(t, body)["name"])

	status, body = api.do(t, http.MethodPost, "/v1/orders", token, fiber.Map{
		"orderItems": []fiber.Map{{"product": cokeID, "quantity": 1, "totalCost": 100}},
		"totalPrice": 999,
	})
	require.Equal(t, http.StatusCreated, status, "%v", body)
	assert.Equal(t, float64(100), body["totalPrice"], "el total lo calcula el servidor")
	orderID := body["_id"].(string)

	status, body = api.do(t, http.MethodGet, "/v1/orders/"+orderID, token, nil)
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]any)
	assert.Equal(t, "Bob", user["fullName"])
	item := body["orderItems"].([]any)[0].(map[string]any)
	assert.Equal(t, "Coke", item["product"].(map[string]any)["name"])

	status, _ = api.do(t, http.MethodGet, "/v1/orders", token, nil)
	assert.Equal(t, http.StatusForbidden, status, "solo admin lista pedidos")

	status, body = api.do(t, http.MethodGet, "/v1/orders?search=cok", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["totalDocs"])

	resp := api.raw(t, http.MethodGet, "/v1/orders/"+orderID+"/receipt", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	pdfBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}

func TestE2E_PedidoConProductoInexistente(t *testing.T) {
	api := newTestAPI(t, false)
	api.register(t, "Bob", "bob@example.com", "")
	token := api.login(t, "bob@example.com", password)

	status, body := api.do(t, http.MethodPost, "/v1/orders", token, fiber.Map{
		"orderItems": []fiber.Map{{"product": "no-existe", "quantity": 1, "totalCost": 10}},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Failed", body["status"])

	status, _ = api.do(t, http.MethodPost, "/v1/orders", token, fiber.Map{"orderItems": []fiber.Map{}})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestE2E_RegistroEmailDuplicado(t *testing.T) {
	api := newTestAPI(t, false)
	api.register(t, "Ana", "ana@example.com", "")

	status, body := api.do(t, http.MethodPost, "/v1/auth/register", "", fiber.Map{
		"fullName": "Otra Ana", "email": "ana@example.com", "password": "otherpass",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "EMAIL_EXISTS", body["code"])

	token := api.login(t, "ana@example.com", password)
	status, body = api.do(t, http.MethodGet, "/v1/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"fullName": "Ana", "email": "ana@example.com"}, body["user"])
}

func TestE2E_RegistroValidaciones(t *testing.T) {
	api := newTestAPI(t, false)

	status, body := api.do(t, http.MethodPost, "/v1/auth/register", "", fiber.Map{
		"fullName": "Ana", "password": password,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	status, body = api.do(t, http.MethodPost, "/v1/auth/register", "", fiber.Map{
		"fullName": "Root", "email": "root@example.com", "password": password, "role": "admin",
	})
	assert.Equal(t, http.StatusForbidden, status, "auto-registro admin deshabilitado")
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestE2E_LoginInvalido(t *testing.T) {
	api := newTestAPI(t, false)
	api.register(t, "Ana", "ana@example.com", "")

	status, body := api.do(t, http.MethodPost, "/v1/auth/login", "", fiber.Map{"email": "ana@example.com", "password": "wrongpass"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Failed", body["status"])

	status, _ = api.do(t, http.MethodPost, "/v1/auth/login", "", fiber.Map{"email": "nadie@example.com", "password": password})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = api.do(t, http.MethodPost, "/v1/auth/login", "", fiber.Map{"email": "ana@example.com", "password": password})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Login successful", body["status"])
	assert.Equal(t, "You have successfully logged in", body["message"])
}

func TestE2E_ProductoAjenoProhibido(t *testing.T) {
	api := newTestAPI(t, true)
	api.register(t, "A", "a@example.com", "admin")
	api.register(t, "B", "b@example.com", "admin")
	tokenA := api.login(t, "a@example.com", password)
	tokenB := api.login(t, "b@example.com", password)
	id := api.createProduct(t, tokenA, "Coke", 100)

	status, _ := api.do(t, http.MethodPut, "/v1/products/"+id, tokenB, fiber.Map{
		"name": "Hack", "description": "x", "price": 1,
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = api.do(t, http.MethodDelete, "/v1/products/"+id, tokenB, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, body := api.do(t, http.MethodGet, "/v1/products/"+id, tokenB, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Coke", data(t, body)["name"], "el producto no cambió")
}

func TestE2E_UserNoCreaProductos(t *testing.T) {
	api := newTestAPI(t, false)
	api.register(t, "Bob", "bob@example.com", "")
	token := api.login(t, "bob@example.com", password)

	status, body := api.do(t, http.MethodPost, "/v1/products", token, fiber.Map{
		"name": "Coke", "description": "d", "price": 1,
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestE2E_Paginacion(t *testing.T) {
	api := newTestAPI(t, true)
	api.register(t, "Admin", "admin@example.com", "admin")
	token := api.login(t, "admin@example.com", password)
	for i := 0; i < 15; i++ {
		api.createProduct(t, token, fmt.Sprintf("Product %02d", i), float64(10+i))
	}

	status, body := api.do(t, http.MethodGet, "/v1/products?limit=10&page=1", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, list(t, body), 10)
	assert.Equal(t, "Successful", body["message"])
	assert.Equal(t, float64(15), body["totalDocs"])
	assert.Equal(t, float64(2), body["totalPages"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(10), body["limit"])

	status, body = api.do(t, http.MethodGet, "/v1/products?limit=10&page=2", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, list(t, body), 5)

	status, body = api.do(t, http.MethodGet, "/v1/products?minPrice=20&maxPrice=22", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), body["totalDocs"])

	status, _ = api.do(t, http.MethodGet, "/v1/products?minPrice=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = api.do(t, http.MethodGet, "/v1/products?page=uno", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = api.do(t, http.MethodGet, "/v1/products?minDate=ayer", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = api.do(t, http.MethodGet, "/v1/products?page=1000000000000000000&limit=10", token, nil)
	assert.Equal(t, http.StatusBadRequest, status, "page desborda el offset")
	assert.Equal(t, "VALIDATION", body["code"])

	status, body = api.do(t, http.MethodGet, "/v1/products?page=1000000&limit=10", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, list(t, body))
}

func TestE2E_ImportesRequeridos(t *testing.T) {
	api := newTestAPI(t, true)
	api.register(t, "Admin", "admin@example.com", "admin")
	token := api.login(t, "admin@example.com", password)
	cokeID := api.createProduct(t, token, "Coke", 100)

	status, body := api.do(t, http.MethodPost, "/v1/products", token, fiber.Map{
		"name": "NoPrice", "description": "d",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	status, _ = api.do(t, http.MethodPut, "/v1/products/"+cokeID, token, fiber.Map{
		"name": "Coke", "description": "d",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = api.do(t, http.MethodPost, "/v1/products", token, fiber.Map{
		"name": "Gratis", "description": "d", "price": 0,
	})
	require.Equal(t, http.StatusCreated, status, "precio cero explícito es válido: %v", body)

	status, _ = api.do(t, http.MethodPost, "/v1/products", token, fiber.Map{
		"name": "Caro", "description": "d", "price": 1.23456,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = api.do(t, http.MethodPost, "/v1/orders", token, fiber.Map{
		"orderItems": []fiber.Map{{"product": cokeID, "quantity": 1}},
		"totalPrice": 100,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	status, _ = api.do(t, http.MethodGet, "/v1/products/"+cokeID, token, nil)
	require.Equal(t, http.StatusOK, status)
}

func TestE2E_BorrarInexistente404(t *testing.T) {
	api := newTestAPI(t, true)
	api.register(t, "Admin", "admin@example.com", "admin")
	token := api.login(t, "admin@example.com", password)
	const missing = "0b8f2c3e-3d0c-4a39-9f6a-1c2d3e4f5a6b"

	status, body := api.do(t, http.MethodDelete, "/v1/products/"+missing, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])

	status, _ = api.do(t, http.MethodDelete, "/v1/users/"+missing, token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(t, http.MethodGet, "/v1/orders/"+missing, token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(t, http.MethodGet, "/v1/products/not-an-id", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestE2E_RecuperacionDePassword(t *testing.T) {
	api := newTestAPI(t, false)
	api.register(t, "Ana", "ana@example.com", "")

	status, _ := api.do(t, http.MethodPost, "/v1/auth/forgot-password", "", fiber.Map{"email": "nadie@example.com"})
	assert.Equal(t, http.StatusNotFound, status)

	status, body := api.do(t, http.MethodPost, "/v1/auth/forgot-password", "", fiber.Map{"email": "ana@example.com"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Password reset token sent", body["message"])
	match := resetToken.FindStringSubmatch(api.mailer.body)
	require.Len(t, match, 2)

	reset := fiber.Map{"token": match[1], "newPassword": "newsecret"}
	status, body = api.do(t, http.MethodPost, "/v1/auth/reset-password", "", reset)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Password reset successfully", body["message"])

	api.login(t, "ana@example.com", "newsecret")

	status, body = api.do(t, http.MethodPost, "/v1/auth/reset-password", "", reset)
	assert.Equal(t, http.StatusBadRequest, status, "el token es de un solo uso")
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestE2E_Usuarios(t *testing.T) {
	api := newTestAPI(t, true)
	api.register(t, "Admin", "admin@example.com", "admin")
	api.register(t, "Bob", "bob@example.com", "")
	api.register(t, "Carla", "carla@example.com", "")
	adminToken := api.login(t, "admin@example.com", password)
	bobToken := api.login(t, "bob@example.com", password)

	status, body := api.do(t, http.MethodGet, "/v1/users?search=carla", bobToken, nil)
	require.Equal(t, http.StatusOK, status)
	found := list(t, body)
	require.Len(t, found, 1)
	carlaID := found[0].(map[string]any)["_id"].(string)
	assert.NotContains(t, found[0], "password")

	status, body = api.do(t, http.MethodGet, "/v1/users?search=bob", bobToken, nil)
	require.Equal(t, http.StatusOK, status)
	bobID := list(t, body)[0].(map[string]any)["_id"].(string)

	status, body = api.do(t, http.MethodPut, "/v1/users/"+bobID, bobToken, fiber.Map{"fullName": "Roberto"})
	require.Equal(t, http.StatusOK, status, "%v", body)
	assert.Equal(t, "Roberto", data(t, body)["fullName"])

	status, _ = api.do(t, http.MethodPut, "/v1/users/"+carlaID, bobToken, fiber.Map{"fullName": "X"})
	assert.Equal(t, http.StatusForbidden, status, "no puede editar a otro usuario")

	status, _ = api.do(t, http.MethodPut, "/v1/users/"+bobID, bobToken, fiber.Map{"role": "admin"})
	assert.Equal(t, http.StatusForbidden, status, "no puede promoverse")

	status, body = api.do(t, http.MethodPut, "/v1/users/"+carlaID, adminToken, fiber.Map{"role": "admin"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "admin", data(t, body)["role"])

	status, _ = api.do(t, http.MethodDelete, "/v1/users/"+carlaID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = api.do(t, http.MethodDelete, "/v1/users/"+carlaID, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Deleted Successfully", body["message"])

	status, _ = api.do(t, http.MethodGet, "/v1/users/"+carlaID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestE2E_SinTokenYRutasDesconocidas(t *testing.T) {
	api := newTestAPI(t, false)

	status, body := api.do(t, http.MethodGet, "/v1/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Failed", body["status"])

	status, _ = api.do(t, http.MethodGet, "/v1/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = api.do(t, http.MethodGet, "/v1/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Failed", body["status"])
	assert.Equal(t, "NOT_FOUND", body["code"])

	status, body = api.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
