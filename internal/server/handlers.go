package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/alexiusacademia/rcalc/internal/ec2"
	"github.com/alexiusacademia/rcalc/internal/element"
	"github.com/alexiusacademia/rcalc/internal/report"
)

// maxBody limits request bodies
const maxBody = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// CalcResponse is the reply of the calculation endpoints
type CalcResponse struct {
	ID      string           `json:"id"`
	Outputs []element.Output `json:"outputs"`
}

// ReportRequest selects the elements and metadata of a report
type ReportRequest struct {
	Title    string            `json:"title"`
	Project  string            `json:"project"`
	Author   string            `json:"author"`
	Diagrams bool              `json:"diagrams"`
	Elements []json.RawMessage `json:"elements"`
}

// MaterialsResponse lists the material catalog
type MaterialsResponse struct {
	Concrete  []ec2.Concrete    `json:"concrete"`
	Steel     []ec2.Steel       `json:"steel"`
	Exposure  []ec2.Exposure    `json:"exposure"`
	Diameters []int             `json:"diameters"`
	Labels    map[string]string `json:"labels"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("writing response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// parseElements accepts one element envelope or an array of them
func parseElements(body []byte) ([]element.Element, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errors.New("empty request body")
	}
	if body[0] != '[' {
		e, err := element.Parse(body, element.JSON)
		if err != nil {
			return nil, err
		}
		return []element.Element{e}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	return parseRaw(raw)
}

func parseRaw(raw []json.RawMessage) ([]element.Element, error) {
	elements := make([]element.Element, 0, len(raw))
	for i, r := range raw {
		e, err := element.Parse(r, element.JSON)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i+1, err)
		}
		elements = append(elements, e)
	}
	return elements, nil
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return body, true
}

func (s *Server) calculate(w http.ResponseWriter, elements []element.Element) {
	outputs, err := element.CalculateAll(elements)
	if err != nil {
		log.WithError(err).Error("calculation failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, CalcResponse{ID: uuid.NewString(), Outputs: outputs})
}

func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	elements, err := parseElements(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.calculate(w, elements)
}

// handleCalcKind takes the bare parameter record of the kind in the path
func (s *Server) handleCalcKind(w http.ResponseWriter, r *http.Request) {
	kind, err := ec2.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	envelope, err := json.Marshal(struct {
		Element string          `json:"element"`
		Data    json.RawMessage `json:"data"`
	}{kind.String(), json.RawMessage(bytes.TrimSpace(body))})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	e, err := element.Parse(envelope, element.JSON)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.calculate(w, []element.Element{e})
}

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MaterialsResponse{
		Concrete:  ec2.ConcreteClasses(),
		Steel:     ec2.SteelGrades(),
		Exposure:  ec2.ExposureClasses(),
		Diameters: ec2.Diameters,
		Labels:    ec2.Labels,
	})
}

// reportOutputs decodes a report request and calculates its elements
func (s *Server) reportOutputs(w http.ResponseWriter, r *http.Request) (ReportRequest, report.Meta, []element.Output, bool) {
	var req ReportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return req, report.Meta{}, nil, false
	}
	elements, err := parseRaw(req.Elements)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, report.Meta{}, nil, false
	}
	outputs, err := element.CalculateAll(elements)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return req, report.Meta{}, nil, false
	}

	if req.Project == "" {
		req.Project = s.report.Project
	}
	if req.Author == "" {
		req.Author = s.report.Author
	}
	return req, report.NewMeta(req.Title, req.Project, req.Author), outputs, true
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	req, meta, outputs, ok := s.reportOutputs(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WritePDF(&buf, meta, outputs, report.PDFOptions{Diagrams: req.Diagrams}); err != nil {
		log.WithError(err).Error("report generation")
		writeError(w, http.StatusInternalServerError, "report generation error")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"rcalc-%s.pdf\"", meta.ID))
	w.Write(buf.Bytes())
}

func (s *Server) handleXLSX(w http.ResponseWriter, r *http.Request) {
	_, meta, outputs, ok := s.reportOutputs(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, meta, outputs); err != nil {
		log.WithError(err).Error("workbook generation")
		writeError(w, http.StatusInternalServerError, "workbook generation error")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"rcalc-%s.xlsx\"", meta.ID))
	w.Write(buf.Bytes())
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := element.WriteWorkbookTemplate(&buf); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"rcalc-template.xlsx\"")
	w.Write(buf.Bytes())
}
