package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/gorilla/websocket"

	"github.com/alexiusacademia/rcalc/internal/config"
	"github.com/alexiusacademia/rcalc/internal/ec2"
)

const beamData = `{
  "section": "support", "width": 30, "height": 50,
  "cover": 30, "stirrup_diameter": 8, "bar_diameter": 16, "moment": 120,
  "concrete_class": "C25/30", "steel_grade": "RB500W"
}`

func newServer(burst int) *Server {
	cfg := config.Default()
	cfg.Server.Burst = burst
	cfg.Report.Author = "J. Doe"
	return NewServer(cfg)
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func Test_server01(tst *testing.T) {

	chk.PrintTitle("server01. materials")

	w := do(newServer(10).Handler(), http.MethodGet, "/api/materials", "")
	chk.IntAssert(w.Code, http.StatusOK)
	chk.StrAssert(w.Header().Get("Access-Control-Allow-Origin"), "*")

	var m MaterialsResponse
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(len(m.Concrete), len(ec2.ConcreteClasses()))
	chk.Ints(tst, "diameters", m.Diameters, ec2.Diameters)
}

func Test_server02(tst *testing.T) {

	chk.PrintTitle("server02. calculation")

	h := newServer(10).Handler()

	w := do(h, http.MethodPost, "/api/calc/beam", beamData)
	chk.IntAssert(w.Code, http.StatusOK)
	var res CalcResponse
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(len(res.Outputs), 1)
	chk.IntAssert(int(res.Outputs[0].Kind), int(ec2.Beam))
	chk.IntAssert(*res.Outputs[0].Results.ProvidedReinforcement[0].BarCount, 3)
	chk.IntAssert(len(res.ID), 36)

	batch := `[{"element": "beam", "info": {"name": "B1"}, "data": ` + beamData + `},
	           {"element": "col", "data": {"width": 30, "height": 40, "cover": 30, "stirrup_diameter": 8,
	            "bar_diameter": 16, "axial_force": 1000, "moment": 0,
	            "concrete_class": "C25/30", "steel_grade": "RB500W"}}]`
	w = do(h, http.MethodPost, "/api/calc", batch)
	chk.IntAssert(w.Code, http.StatusOK)
	res = CalcResponse{}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(len(res.Outputs), 2)
	chk.Strings(tst, "faces", res.Outputs[1].Results.Positions, []string{"face 1", "face 2"})

	chk.IntAssert(do(h, http.MethodPost, "/api/calc/wall", beamData).Code, http.StatusNotFound)
	chk.IntAssert(do(h, http.MethodPost, "/api/calc/beam", `{"widht": 30}`).Code, http.StatusBadRequest)
	chk.IntAssert(do(h, http.MethodPost, "/api/calc", "").Code, http.StatusBadRequest)
	w = do(h, http.MethodGet, "/api/calc", "")
	chk.IntAssert(w.Code, http.StatusMethodNotAllowed)
	var e errorResponse
	if err := json.NewDecoder(w.Body).Decode(&e); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.StrAssert(e.Error, "GET not allowed on /api/calc")
	chk.IntAssert(do(h, http.MethodPost, "/api/materials", "").Code, http.StatusMethodNotAllowed)
	chk.IntAssert(do(h, http.MethodGet, "/api/report/pdf", "").Code, http.StatusMethodNotAllowed)
	chk.IntAssert(do(h, http.MethodOptions, "/api/calc", "").Code, http.StatusNoContent)
}

func Test_server03(tst *testing.T) {

	chk.PrintTitle("server03. reports")

	h := newServer(10).Handler()
	body := `{"title": "Floor 1", "elements": [{"element": "beam", "data": ` + beamData + `}]}`

	w := do(h, http.MethodPost, "/api/report/pdf", body)
	chk.IntAssert(w.Code, http.StatusOK)
	chk.StrAssert(w.Header().Get("Content-Type"), "application/pdf")
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		tst.Errorf("test failed: not a PDF document\n")
	}

	w = do(h, http.MethodPost, "/api/report/xlsx", body)
	chk.IntAssert(w.Code, http.StatusOK)
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		tst.Errorf("test failed: not a workbook\n")
	}

	w = do(h, http.MethodGet, "/api/template.xlsx", "")
	chk.IntAssert(w.Code, http.StatusOK)

	chk.IntAssert(do(h, http.MethodPost, "/api/report/pdf", "{").Code, http.StatusBadRequest)
	chk.IntAssert(do(h, http.MethodPost, "/api/report/xlsx", `{"elements": [{"element": "wall"}]}`).Code, http.StatusBadRequest)
}

func Test_server04(tst *testing.T) {

	chk.PrintTitle("server04. rate limit")

	h := newServer(2).Handler()
	chk.IntAssert(do(h, http.MethodGet, "/api/materials", "").Code, http.StatusOK)
	chk.IntAssert(do(h, http.MethodGet, "/api/materials", "").Code, http.StatusOK)
	chk.IntAssert(do(h, http.MethodGet, "/api/materials", "").Code, http.StatusTooManyRequests)

	// other clients keep their own bucket
	req := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	chk.IntAssert(w.Code, http.StatusOK)
}

func Test_server05(tst *testing.T) {

	chk.PrintTitle("server05. websocket")

	ts := httptest.NewServer(newServer(10).Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	defer conn.Close()

	msgs := []WsMessage{
		{Seq: 1, Element: json.RawMessage(`{"element": "beam", "data": ` + beamData + `}`)},
		{Seq: 2, Element: json.RawMessage(`{"element": "wall", "data": {}}`)},
	}
	var session string
	for _, msg := range msgs {
		if err := conn.WriteJSON(msg); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		var reply WsReply
		if err := conn.ReadJSON(&reply); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.IntAssert(reply.Seq, msg.Seq)
		if session == "" {
			session = reply.Session
		}
		chk.StrAssert(reply.Session, session)

		switch msg.Seq {
		case 1:
			if reply.Output == nil || reply.Error != "" {
				tst.Errorf("test failed: reply %+v\n", reply)
			}
		case 2:
			if reply.Output != nil || reply.Error == "" {
				tst.Errorf("test failed: reply %+v\n", reply)
			}
		}
	}
}
