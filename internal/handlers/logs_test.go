package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"timeboard/internal/models"
	"timeboard/internal/service"
)

func requestLogs(t *testing.T, s *service.Service, query string) *httptest.ResponseRecorder {
	t.Helper()
	r := newTestRouter(s)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/logs/"+query, nil)
	req.Header = authHeader("valid")
	r.ServeHTTP(w, req)
	return w
}

func TestLogsHandler_CountdownHistory(t *testing.T) {
	at := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	logs := &mockEventLog{resp: []models.TimerEvent{
		{EventID: "1", OccurredAt: at, Type: models.EventLoad, Description: "Countdown loaded 00:00:05"},
		{EventID: "2", OccurredAt: at.Add(time.Second), Type: models.EventStart, Description: "Countdown started at 00:00:05"},
		{EventID: "3", OccurredAt: at.Add(6 * time.Second), Type: models.EventExpired, Description: "Countdown reached zero"},
	}}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, EventLog: logs}

	w := requestLogs(t, s, "?from=2025-10-01&to=2025-10-01&limit=10")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                 `json:"count"`
		ByType map[string]int      `json:"by_type"`
		Events []models.TimerEvent `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != 3 || len(out.Events) != 3 || out.Events[2].Type != models.EventExpired {
		t.Fatalf("unexpected body: %+v", out)
	}
	if out.ByType[models.EventStart] != 1 || out.ByType[models.EventPause] != 0 {
		t.Fatalf("by_type=%v", out.ByType)
	}

	wantTo := time.Date(2025, 10, 1, 23, 59, 59, 999999999, time.UTC)
	if !logs.last.From.Equal(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)) || !logs.last.To.Equal(wantTo) {
		t.Fatalf("range %v..%v", logs.last.From, logs.last.To)
	}
	if logs.last.Limit != 10 {
		t.Fatalf("limit=%d", logs.last.Limit)
	}
}

func TestLogsHandler_SnapshotKeyAndType(t *testing.T) {
	logs := &mockEventLog{}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, EventLog: logs}

	w := requestLogs(t, s, "?type=restore&key=heat-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if logs.last.Type != "restore" || logs.last.Key != "heat-1" {
		t.Fatalf("filter=%+v", logs.last)
	}
}

func TestLogsHandler_BadRequests(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		listErr error
		calls   int
	}{
		{name: "unparsable from", query: "?from=yesterday"},
		{name: "unparsable to", query: "?to=2025-13-01"},
		{name: "limit not a number", query: "?limit=ten"},
		{name: "unknown lifecycle type", query: "?type=STOP", listErr: fmt.Errorf("%w: %q", service.ErrUnknownEventType, "STOP"), calls: 1},
		{name: "reversed range", query: "?from=2025-10-02&to=2025-10-01", listErr: service.ErrInvalidTimeRange, calls: 1},
		{name: "negative limit", query: "?limit=-3", listErr: service.ErrInvalidLimit, calls: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logs := &mockEventLog{err: tc.listErr}
			s := &service.Service{Authorization: &mockAuth{parseID: 1}, EventLog: logs}

			w := requestLogs(t, s, tc.query)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
			if logs.calls != tc.calls {
				t.Fatalf("service calls=%d; want %d", logs.calls, tc.calls)
			}
		})
	}
}

func TestLogsHandler_StorageFailure(t *testing.T) {
	logs := &mockEventLog{err: fmt.Errorf("database is locked")}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, EventLog: logs}

	if w := requestLogs(t, s, ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}
