package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	producterrors "github.com/marketbay/product_service/internal/errors"
	"github.com/marketbay/product_service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	product  *service.ProductDto
	products []service.ProductDto
	error    error
}

func (m *mockProductService) FindByID(_ context.Context, _ string) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) FindAll(_ context.Context) ([]service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

func (m *mockProductService) Create(_ context.Context, _ service.ProductCreateDto) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Update(_ context.Context, _ string, _ service.ProductUpdateDto) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) DeleteByID(_ context.Context, _ string) error {
	return m.error
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// toJSON is a helper function to convert a struct to JSON string
func toJSON(t *testing.T, v interface{}) string {
	t.Helper()
	bytes, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal to JSON: %v", err)
	}
	return string(bytes)
}

func newTestHandler(svc service.ProductService) *Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewHandler(svc, logger)
}

func Test_ProductAPI_FindByID(t *testing.T) {
	const mockID = "123e4567-e89b-12d3-a456-426614174000"
	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - product found",
			mockService: mockProductService{
				product: &service.ProductDto{
					ID:          mockID,
					Name:        "Pen",
					Description: "Blue ink",
					Price:       1.5,
					Available:   true,
				},
			},
			productID:    mockID,
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, service.ProductDto{
				ID:          mockID,
				Name:        "Pen",
				Description: "Blue ink",
				Price:       1.5,
				Available:   true,
			}),
		},
		{
			name: "Error - product not found",
			mockService: mockProductService{
				error: producterrors.ErrProductNotFound,
			},
			productID:    "unknown-id",
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{
				Error: "Product with ID unknown-id not found",
			}),
		},
		{
			name: "Error - service error",
			mockService: mockProductService{
				error: errors.New("service unavailable"),
			},
			productID:    mockID,
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{
				Error: "Failed to retrieve product with ID " + mockID,
			}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			api.FindByID(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_FindAll(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - products found",
			mockService: mockProductService{
				products: []service.ProductDto{
					{ID: "id-1", Name: "Pen", Description: "Blue ink", Price: 1.5, Available: true},
					{ID: "id-2", Name: "Pencil", Description: "HB", Price: 0.5, Available: false},
				},
			},
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, []service.ProductDto{
				{ID: "id-1", Name: "Pen", Description: "Blue ink", Price: 1.5, Available: true},
				{ID: "id-2", Name: "Pencil", Description: "HB", Price: 0.5, Available: false},
			}),
		},
		{
			name: "Success - empty list",
			mockService: mockProductService{
				products: []service.ProductDto{},
			},
			expectedCode: http.StatusOK,
			expectedBody: "[]",
		},
		{
			name: "Error - service error",
			mockService: mockProductService{
				error: errors.New("scan failed"),
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to fetch products"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
			rr := httptest.NewRecorder()

			// when
			api.FindAll(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_Create(t *testing.T) {
	const mockID = "123e4567-e89b-12d3-a456-426614174000"
	created := &service.ProductDto{
		ID:          mockID,
		Name:        "Pen",
		Description: "Blue ink",
		Price:       1.5,
		Available:   true,
	}
	testCases := []struct {
		name         string
		mockService  mockProductService
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product created",
			mockService:  mockProductService{product: created},
			body:         `{"name":"Pen","description":"Blue ink","price":1.5,"available":true}`,
			expectedCode: http.StatusCreated,
			expectedBody: toJSON(t, created),
		},
		{
			name:         "Success - zero price and unavailable are valid",
			mockService:  mockProductService{product: created},
			body:         `{"name":"Pen","description":"Blue ink","price":0,"available":false}`,
			expectedCode: http.StatusCreated,
			expectedBody: toJSON(t, created),
		},
		{
			name:         "Error - malformed JSON",
			mockService:  mockProductService{},
			body:         `{"name":"Pen"`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid request body: unexpected EOF"}),
		},
		{
			name:         "Error - missing fields reported together",
			mockService:  mockProductService{},
			body:         `{"name":"Pen"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{Errors: []string{
				"Description: failed on rule: required",
				"Price: failed on rule: required",
				"Available: failed on rule: required",
			}}),
		},
		{
			name:         "Error - wrong price type listed as violation",
			mockService:  mockProductService{},
			body:         `{"price":"not-a-number"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{Errors: []string{
				"price: failed on type: expected float64",
				"Name: failed on rule: required",
				"Description: failed on rule: required",
				"Price: failed on rule: required",
				"Available: failed on rule: required",
			}}),
		},
		{
			name:         "Error - negative price",
			mockService:  mockProductService{},
			body:         `{"name":"Pen","description":"Blue ink","price":-1,"available":true}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{Errors: []string{
				"Price: failed on rule: gte",
			}}),
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("store down")},
			body:         `{"name":"Pen","description":"Blue ink","price":1.5,"available":true}`,
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to create product"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			// when
			api.Create(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_Update(t *testing.T) {
	const mockID = "123e4567-e89b-12d3-a456-426614174000"
	updated := &service.ProductDto{
		ID:          mockID,
		Name:        "Pen",
		Description: "Black ink",
		Price:       2.0,
		Available:   false,
	}
	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product updated",
			mockService:  mockProductService{product: updated},
			productID:    mockID,
			body:         `{"name":"Pen","description":"Black ink","price":2.0,"available":false}`,
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, updated),
		},
		{
			name:         "Success - productID in body is ignored",
			mockService:  mockProductService{product: updated},
			productID:    mockID,
			body:         `{"productID":"someone-elses-id","name":"Pen","description":"Black ink","price":2.0,"available":false}`,
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, updated),
		},
		{
			name:         "Error - product not found",
			mockService:  mockProductService{error: producterrors.ErrProductNotFound},
			productID:    mockID,
			body:         `{"name":"Pen","description":"Black ink","price":2.0,"available":false}`,
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with ID " + mockID + " not found"}),
		},
		{
			name:         "Error - invalid body",
			mockService:  mockProductService{},
			productID:    mockID,
			body:         `{"name":"Pen"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{Errors: []string{
				"Description: failed on rule: required",
				"Price: failed on rule: required",
				"Available: failed on rule: required",
			}}),
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("store down")},
			productID:    mockID,
			body:         `{"name":"Pen","description":"Black ink","price":2.0,"available":false}`,
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to update product with ID " + mockID}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)

			req := httptest.NewRequest(http.MethodPut, "/api/v1/products/"+tc.productID, strings.NewReader(tc.body))
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			api.Update(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_DeleteByID(t *testing.T) {
	const mockID = "123e4567-e89b-12d3-a456-426614174000"
	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product deleted",
			mockService:  mockProductService{},
			productID:    mockID,
			expectedCode: http.StatusNoContent,
			expectedBody: "",
		},
		{
			name:         "Error - product not found",
			mockService:  mockProductService{error: producterrors.ErrProductNotFound},
			productID:    mockID,
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with ID " + mockID + " not found"}),
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("store down")},
			productID:    mockID,
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to delete product with ID " + mockID}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			api.DeleteByID(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			if tc.expectedBody == "" {
				assert.Empty(t, rr.Body.String(), "body should be empty")
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
			}
		})
	}
}

func Test_ProductAPI_HealthCheck(t *testing.T) {
	api := newTestHandler(&mockProductService{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	api.HealthCheck(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}
