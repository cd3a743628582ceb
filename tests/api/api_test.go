package apitest

import (
	"fmt"
	"net/http"
	"testing"

	needsEntity "multirex.GO/model/entity/needs"
)

func TestStockAPI_ListEngines(t *testing.T) {
	e, db := newServer(t)
	seedEngines(t, db)

	var body struct {
		Count int `json:"count"`
		Items []struct {
			ID        uint   `json:"n_moteur"`
			Code      string `json:"code_moteur"`
			Available int    `json:"est_disponible"`
		} `json:"items"`
	}
	rec := getJSON(t, e, "/api/stock/engines", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body.Count != 2 {
		t.Fatalf("count = %d, want 2", body.Count)
	}

	rec = getJSON(t, e, "/api/stock/engines?available=1", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body.Count != 1 || body.Items[0].ID != 1 {
		t.Errorf("available filter returned %+v, want only engine 1", body.Items)
	}

	rec = getJSON(t, e, "/api/stock/engines?limit=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit status = %d, want 400", rec.Code)
	}
}

func TestStockAPI_GetEngine(t *testing.T) {
	e, db := newServer(t)
	seedEngines(t, db)

	var row struct {
		ID        uint `json:"n_moteur"`
		Available int  `json:"est_disponible"`
	}
	rec := getJSON(t, e, "/api/stock/engines/2", &row)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if row.ID != 2 || row.Available != 0 {
		t.Errorf("row = %+v, want archived engine 2 unavailable", row)
	}

	if rec := getJSON(t, e, "/api/stock/engines/999", nil); rec.Code != http.StatusNotFound {
		t.Errorf("missing engine status = %d, want 404", rec.Code)
	}
	if rec := getJSON(t, e, "/api/stock/engines/abc", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", rec.Code)
	}
}

func TestStatsAPI_KPIs(t *testing.T) {
	e, db := newServer(t)
	seedEngines(t, db)

	// The in-process stats cache is shared across tests in this package.
	if rec := request(t, e, http.MethodPost, "/api/stats/invalidate", nil, ""); rec.Code != http.StatusOK {
		t.Fatalf("invalidate status = %d", rec.Code)
	}

	var body struct {
		Engines struct {
			Available int `json:"dispo"`
			Total     int `json:"total"`
		} `json:"moteurs"`
	}
	rec := getJSON(t, e, "/api/stats/kpis", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body.Engines.Available != 1 || body.Engines.Total != 2 {
		t.Errorf("engine KPIs = %+v, want 1 available of 2", body.Engines)
	}
}

func TestStatsAPI_PriceMovers(t *testing.T) {
	e, _ := newServer(t)

	if rec := request(t, e, http.MethodPost, "/api/stats/invalidate", nil, ""); rec.Code != http.StatusOK {
		t.Fatalf("invalidate status = %d", rec.Code)
	}

	var body struct {
		Count int `json:"count"`
	}
	rec := getJSON(t, e, "/api/stats/prices/movers", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body.Count != 0 {
		t.Errorf("count = %d, want 0 on an empty base", body.Count)
	}

	rec = getJSON(t, e, "/api/stats/prices/movers?type=location", &body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad kind status = %d, want 400", rec.Code)
	}
}

func TestBreakerAPI_Offers(t *testing.T) {
	e, _ := newServer(t)

	rec := postJSON(t, e, "/api/breaker/offers/click",
		`{"casse":"CASSE DU NORD","code_moteur":"k9k702","prix_demande":450}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, e, "/api/breaker/offers/click", `{"code_moteur":"K9K702"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing breaker status = %d, want 400", rec.Code)
	}

	rec = postJSON(t, e, "/api/breaker/offers/free", `{"casse":"CASSE DU NORD","texte":"moteur clio 1.5 dci"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("free offer status = %d, body %s", rec.Code, rec.Body.String())
	}

	var feed struct {
		Count int `json:"count"`
		Items []struct {
			EngineCode  string `json:"code_moteur"`
			BreakerName string `json:"breaker_name"`
		} `json:"items"`
	}
	rec = getJSON(t, e, "/api/breaker/offers/click", &feed)
	if rec.Code != http.StatusOK {
		t.Fatalf("feed status = %d", rec.Code)
	}
	if feed.Count != 1 || feed.Items[0].EngineCode != "K9K702" || feed.Items[0].BreakerName != "CASSE DU NORD" {
		t.Errorf("feed = %+v, want one normalized offer with breaker name", feed)
	}

	var stats struct {
		Click int64 `json:"click"`
		Free  int64 `json:"free"`
		Total int64 `json:"total"`
	}
	rec = getJSON(t, e, "/api/breaker/stats/today?casse=CASSE+DU+NORD", &stats)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats status = %d", rec.Code)
	}
	if stats.Click != 1 || stats.Free != 1 || stats.Total != 2 {
		t.Errorf("stats = %+v, want 1/1/2", stats)
	}
}

func TestNeedsAPI_Lifecycle(t *testing.T) {
	e, _ := newServer(t)

	rec := postJSON(t, e, "/api/needs", `{"client_name":"AMANDE EXPORT"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty need status = %d, want 400", rec.Code)
	}

	rec = postJSON(t, e, "/api/needs", `{"client_name":"AMANDE EXPORT","code_moteur":" k9k702 "}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created needsEntity.InternalNeed
	decodeBody(t, rec, &created)
	if created.EngineCode == nil || *created.EngineCode != "K9K702" {
		t.Errorf("stored code = %v, want normalized K9K702", created.EngineCode)
	}

	var list struct {
		Count int                        `json:"count"`
		Items []needsEntity.InternalNeed `json:"items"`
	}
	if rec := getJSON(t, e, "/api/needs", &list); rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	if list.Count != 1 {
		t.Fatalf("list count = %d, want 1", list.Count)
	}

	rec = request(t, e, http.MethodDelete, fmt.Sprintf("/api/needs/%d", created.ID), nil, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if rec := getJSON(t, e, "/api/needs", &list); list.Count != 0 {
		t.Errorf("list after delete = %d items, want 0 (status %d)", list.Count, rec.Code)
	}
}
