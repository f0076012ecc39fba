package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "overcooked-delivery/order-svc/internal/api/http"
	"overcooked-delivery/order-svc/internal/domain"
	"overcooked-delivery/order-svc/internal/service"
	"overcooked-delivery/order-svc/internal/storage"
)

type capturedWriter struct {
	messages []kafka.Message
}

func (w *capturedWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

type flowEnv struct {
	router http.Handler
	db     sqlmock.Sqlmock
	writer *capturedWriter
}

func newFlowEnv(t *testing.T) flowEnv {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo := storage.NewPostgresRepository(db)
	writer := &capturedWriter{}
	catalog := service.NewCatalogService(repo, storage.NewRedisMenuCache(rdb, time.Minute))
	orders := service.NewOrderService(catalog, repo, storage.NewKafkaPublisher(writer), nil)

	return flowEnv{
		router: httpapi.NewRouter(httpapi.NewHandler(catalog, orders)),
		db:     sqlMock,
		writer: writer,
	}
}

func expectMenuRead(m sqlmock.Sqlmock) {
	m.ExpectBegin()
	m.ExpectQuery("SELECT delivery_price FROM restaurants").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"delivery_price"}).AddRow("12.00"))
	m.ExpectQuery("FROM menu_meals").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "tag", "ingredients", "price"}).
			AddRow(1, "Burger", "grill", "{beef}", "10.00"))
	m.ExpectQuery("FROM menu_drinks").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).AddRow(10, "Lemonade", "2.50"))
	m.ExpectCommit()
}

func postOrder(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
	req.Header.Set(httpapi.UserIDHeader, "7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOrderFlow_CheckoutScenario(t *testing.T) {
	env := newFlowEnv(t)
	expectMenuRead(env.db)
	env.db.ExpectBegin()
	env.db.ExpectQuery("INSERT INTO orders").
		WithArgs(7, 1, true, "Main St 1", "", "", "", "", "64.50").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_time"}).AddRow(42, time.Now()))
	env.db.ExpectExec("INSERT INTO order_meals").
		WithArgs(42, 1, 5, "10.00").
		WillReturnResult(sqlmock.NewResult(1, 1))
	env.db.ExpectExec("INSERT INTO order_drinks").
		WithArgs(42, 10, 1, "2.50").
		WillReturnResult(sqlmock.NewResult(1, 1))
	env.db.ExpectCommit()

	w := postOrder(t, env.router, `{"restaurant":1,
		"meals":[{"meal":1,"quantity":3},{"meal":1,"quantity":2}],
		"drinks":[{"drink":10,"quantity":1}],
		"delivery_address":"Main St 1"}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "64.50", body["total_price"])
	assert.NoError(t, env.db.ExpectationsWereMet())

	require.Len(t, env.writer.messages, 1)
	var event domain.OrderCreatedEvent
	require.NoError(t, json.Unmarshal(env.writer.messages[0].Value, &event))
	assert.Equal(t, 42, event.OrderID)
	assert.Equal(t, []domain.EventLine{{ItemID: 1, Quantity: 5}}, event.Meals)
}

func TestOrderFlow_ForeignMealCreatesNothing(t *testing.T) {
	env := newFlowEnv(t)
	expectMenuRead(env.db)

	w := postOrder(t, env.router, `{"restaurant":1,"meals":[{"meal":1,"quantity":1},{"meal":2,"quantity":1}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Error struct {
			Field string `json:"field"`
			Code  string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "meal", body.Error.Field)
	assert.Equal(t, "menu_mismatch", body.Error.Code)
	assert.NoError(t, env.db.ExpectationsWereMet())
	assert.Empty(t, env.writer.messages)
}

func TestOrderFlow_SecondOrderUsesCachedMenu(t *testing.T) {
	env := newFlowEnv(t)
	expectMenuRead(env.db)

	first := postOrder(t, env.router, `{"restaurant":1}`)
	second := postOrder(t, env.router, `{"restaurant":1,"drinks":[{"drink":99,"quantity":1}]}`)

	assert.Equal(t, http.StatusBadRequest, first.Code)
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.NoError(t, env.db.ExpectationsWereMet())
}
