package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Регистрация в default registry выполняется один раз на процесс,
// поэтому все проверки работают с одним экземпляром
func TestNew_RegistersAndObserves(t *testing.T) {
	var m *Metrics

	// Имя сервиса задано константным лейблом, дублирование его
	// переменным лейблом роняло регистрацию db-метрик
	require.NotPanics(t, func() {
		m = New("test-service")
	})
	require.NotNil(t, m)

	m.ObserveHTTPRequest("GET", "/api/v1/adventures/{adventureId}/availability", "200", 25*time.Millisecond)
	m.ObserveDBQuery("query", 3*time.Millisecond, nil)
	m.ObserveDBQuery("query", time.Millisecond, errors.New("boom"))
	m.SetDBPoolStats(7, 4, 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/adventures/{adventureId}/availability", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("query", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("query", "error")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.dbPoolOpen))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.dbPoolIdle))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbPoolInUse))
}
