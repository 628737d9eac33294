package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"shiptrack/models"
	"shiptrack/repository"
)

type fakeShipmentRepo struct {
	shipments   map[string]*models.Shipment
	createErr   error
	lastFilters map[string]interface{}
	legs        []*models.ShipmentLeg
	attached    [][2]int64
}

func (f *fakeShipmentRepo) CreateShipmentWithLegs(s *models.Shipment) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = 17
	s.Status = models.StatusCreated
	return nil
}

func (f *fakeShipmentRepo) GetShipments(filters map[string]interface{}, single bool) ([]*models.Shipment, error) {
	f.lastFilters = filters
	var out []*models.Shipment
	for _, s := range f.shipments {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeShipmentRepo) GetShipmentByReference(ref string) (*models.Shipment, error) {
	s, ok := f.shipments[ref]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeShipmentRepo) AddLeg(leg *models.ShipmentLeg) error {
	leg.ID = int64(len(f.legs) + 1)
	f.legs = append(f.legs, leg)
	return nil
}

func (f *fakeShipmentRepo) AttachContainer(shipmentID, containerID int64) error {
	f.attached = append(f.attached, [2]int64{shipmentID, containerID})
	return nil
}

func (f *fakeShipmentRepo) UpdateReportURL(shipmentID int64, url string) error {
	return nil
}

func TestCreateShipmentHandler(t *testing.T) {
	repo := &fakeShipmentRepo{}
	h := &ShipmentHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPost, "/shipments", strings.NewReader(`{
		"reference_no": "ACME-REF-1001",
		"customer_id": 1,
		"origin_id": 3,
		"destination_id": 4,
		"legs": [{"leg_no": 1, "mode": "OCEAN", "origin_id": 3, "destination_id": 4}]
	}`))
	w := httptest.NewRecorder()
	h.CreateShipment(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Success bool            `json:"success"`
		Data    models.Shipment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, int64(17), resp.Data.ID)
	require.Equal(t, models.StatusCreated, resp.Data.Status)
}

func TestCreateShipmentHandlerDuplicate(t *testing.T) {
	h := &ShipmentHandler{Repo: &fakeShipmentRepo{createErr: repository.ErrDuplicate}}

	req := httptest.NewRequest(http.MethodPost, "/shipments", strings.NewReader(`{
		"reference_no": "ACME-REF-1001", "customer_id": 1, "origin_id": 3, "destination_id": 4
	}`))
	w := httptest.NewRecorder()
	h.CreateShipment(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestGetShipmentsFilterValidation(t *testing.T) {
	repo := &fakeShipmentRepo{}
	h := &ShipmentHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodGet, "/shipments?status=FLYING", nil)
	w := httptest.NewRecorder()
	h.GetShipments(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/shipments?customer_id=7&status=IN_TRANSIT", nil)
	w = httptest.NewRecorder()
	h.GetShipments(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(7), repo.lastFilters["customer_id"])
	require.Equal(t, "IN_TRANSIT", repo.lastFilters["status"])
}

func TestAddLegHandler(t *testing.T) {
	repo := &fakeShipmentRepo{shipments: map[string]*models.Shipment{
		"ACME-REF-1001": {ID: 17, ReferenceNo: "ACME-REF-1001"},
	}}
	h := &ShipmentHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPost, "/shipments/ACME-REF-1001/legs", strings.NewReader(`{
		"leg_no": 3, "mode": "RAIL", "origin_id": 4, "destination_id": 6
	}`))
	w := httptest.NewRecorder()
	h.AddLeg(w, req, "ACME-REF-1001")

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.legs, 1)
	require.Equal(t, int64(17), repo.legs[0].ShipmentID)
	require.Equal(t, 3, repo.legs[0].LegNo)
}

func TestAttachContainerHandler(t *testing.T) {
	repo := &fakeShipmentRepo{shipments: map[string]*models.Shipment{
		"ACME-REF-1001": {ID: 17, ReferenceNo: "ACME-REF-1001"},
	}}
	h := &ShipmentHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPost, "/shipments/ACME-REF-1001/containers",
		strings.NewReader(`{"container_id": 9}`))
	w := httptest.NewRecorder()
	h.AttachContainer(w, req, "ACME-REF-1001")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, [][2]int64{{17, 9}}, repo.attached)

	// Unknown reference propagates as 404.
	req = httptest.NewRequest(http.MethodPost, "/shipments/NOPE-REF-0000/containers",
		strings.NewReader(`{"container_id": 9}`))
	w = httptest.NewRecorder()
	h.AttachContainer(w, req, "NOPE-REF-0000")
	require.Equal(t, http.StatusNotFound, w.Code)
}
