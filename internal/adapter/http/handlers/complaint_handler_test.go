package handlers

import (
	"errors"
	"net/http"
	"testing"

	"supplyops/internal/adapter/http/dto/response"
	"supplyops/internal/adapter/http/handlers/mocks"
	"supplyops/internal/domain/entities"
	"supplyops/internal/domain/errs"
	"supplyops/pkg"

	"go.uber.org/mock/gomock"
)

func TestComplaintHandler_SubmitComplaint(t *testing.T) {
	t.Run("description required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		r := publicRouter(http.MethodPost, "/v1/orders/:id/complaints", NewComplaintHandler(uc).SubmitComplaint)

		w := serve(r, http.MethodPost, "/v1/orders/o-1/complaints", `{"type":"Quality issue"}`, true)
		expectStatus(t, w, http.StatusBadRequest)
		if body := decode[pkg.HTTPError](t, w); body.Code != "INVALID_PAYLOAD" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("order taken from path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		r := publicRouter(http.MethodPost, "/v1/orders/:id/complaints", NewComplaintHandler(uc).SubmitComplaint)

		want := entities.Complaint{OrderID: "o-1", ConsumerRef: "c-1", Type: "Quality issue", Description: "Crates arrived damaged"}
		uc.EXPECT().Submit(gomock.Any(), want).
			Return(entities.Complaint{ID: "1", OrderID: "o-1", Status: entities.ComplaintStatusOpen, Version: 1}, nil)

		w := serve(r, http.MethodPost, "/v1/orders/o-1/complaints",
			`{"consumer_ref":"c-1","type":"Quality issue","description":"Crates arrived damaged"}`, true)
		expectStatus(t, w, http.StatusCreated)
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		r := publicRouter(http.MethodPost, "/v1/orders/:id/complaints", NewComplaintHandler(uc).SubmitComplaint)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Complaint{}, errs.NotFound("order", "o-9"))

		w := serve(r, http.MethodPost, "/v1/orders/o-9/complaints", `{"description":"late"}`, true)
		expectStatus(t, w, http.StatusNotFound)
	})
}

func TestComplaintHandler_Transitions(t *testing.T) {
	t.Run("review without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		r := staffRouter(http.MethodPatch, "/v1/complaints/:id/review", NewComplaintHandler(uc).StartReview)

		uc.EXPECT().StartReview(gomock.Any(), "1", managerCall(0)).
			Return(entities.Complaint{ID: "1", Status: entities.ComplaintStatusInReview, Version: 2}, nil)

		w := serve(r, http.MethodPatch, "/v1/complaints/1/review", "", false)
		expectStatus(t, w, http.StatusOK)
		if body := decode[response.ComplaintResponse](t, w); body.Status != "IN_REVIEW" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("resolve uses reason as resolution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		r := staffRouter(http.MethodPatch, "/v1/complaints/:id/resolve", NewComplaintHandler(uc).ResolveComplaint)

		uc.EXPECT().Resolve(gomock.Any(), "1", managerCall(2), "Refund issued").
			Return(entities.Complaint{ID: "1", Status: entities.ComplaintStatusResolved, Version: 3}, nil)

		w := serve(r, http.MethodPatch, "/v1/complaints/1/resolve", `{"version":2,"reason":"Refund issued"}`, false)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("resolve already escalated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		r := staffRouter(http.MethodPatch, "/v1/complaints/:id/resolve", NewComplaintHandler(uc).ResolveComplaint)

		uc.EXPECT().Resolve(gomock.Any(), "1", gomock.Any(), "").
			Return(entities.Complaint{}, errs.Transition("complaint", "1", "ESCALATED", "RESOLVED"))

		w := serve(r, http.MethodPatch, "/v1/complaints/1/resolve", "", false)
		expectStatus(t, w, http.StatusConflict)
		if body := decode[pkg.HTTPError](t, w); body.Code != "INVALID_TRANSITION" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestComplaintHandler_EscalateComplaint(t *testing.T) {
	t.Run("returns incident", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		r := staffRouter(http.MethodPatch, "/v1/complaints/:id/escalate", NewComplaintHandler(uc).EscalateComplaint)

		uc.EXPECT().Escalate(gomock.Any(), "1", managerCall(2), entities.SeverityHigh).
			Return(entities.Incident{
				ID: "inc-1", OrderID: "o-1", ComplaintID: "1",
				Status: entities.IncidentStatusOpen, Severity: entities.SeverityHigh, Version: 1,
			}, nil)

		w := serve(r, http.MethodPatch, "/v1/complaints/1/escalate", `{"version":2,"severity":" high "}`, false)
		expectStatus(t, w, http.StatusOK)
		body := decode[response.IncidentResponse](t, w)
		if body.ComplaintID != "1" || body.Severity != "HIGH" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("no severity uses default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		r := staffRouter(http.MethodPatch, "/v1/complaints/:id/escalate", NewComplaintHandler(uc).EscalateComplaint)

		uc.EXPECT().Escalate(gomock.Any(), "1", managerCall(0), entities.Severity("")).
			Return(entities.Incident{ID: "inc-1", ComplaintID: "1"}, nil)

		w := serve(r, http.MethodPatch, "/v1/complaints/1/escalate", "", false)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		r := staffRouter(http.MethodPatch, "/v1/complaints/:id/escalate", NewComplaintHandler(uc).EscalateComplaint)

		uc.EXPECT().Escalate(gomock.Any(), "1", gomock.Any(), gomock.Any()).
			Return(entities.Incident{}, errs.Conflict("complaint", "1", 1, 2))

		w := serve(r, http.MethodPatch, "/v1/complaints/1/escalate", `{"version":1}`, false)
		expectStatus(t, w, http.StatusConflict)
		if body := decode[pkg.HTTPError](t, w); body.Code != "CONCURRENT_MODIFICATION" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		r := staffRouter(http.MethodPatch, "/v1/complaints/:id/escalate", NewComplaintHandler(uc).EscalateComplaint)

		uc.EXPECT().Escalate(gomock.Any(), "1", gomock.Any(), gomock.Any()).
			Return(entities.Incident{}, errors.New("transaction failed"))

		w := serve(r, http.MethodPatch, "/v1/complaints/1/escalate", "", false)
		expectStatus(t, w, http.StatusInternalServerError)
	})
}

func TestComplaintHandler_AddNote(t *testing.T) {
	t.Run("note required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		r := staffRouter(http.MethodPost, "/v1/complaints/:id/notes", NewComplaintHandler(uc).AddNote)

		w := serve(r, http.MethodPost, "/v1/complaints/1/notes", `{"version":1}`, false)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("appended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIComplaintUseCase(ctrl)
		r := staffRouter(http.MethodPost, "/v1/complaints/:id/notes", NewComplaintHandler(uc).AddNote)

		uc.EXPECT().AddNote(gomock.Any(), "1", managerCall(1), "Called the consumer").
			Return(entities.Complaint{ID: "1", InternalNotes: []entities.Note{{Text: "Called the consumer"}}, Version: 2}, nil)

		w := serve(r, http.MethodPost, "/v1/complaints/1/notes", `{"version":1,"note":"Called the consumer"}`, false)
		expectStatus(t, w, http.StatusOK)
		if body := decode[response.ComplaintResponse](t, w); len(body.InternalNotes) != 1 {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestComplaintHandler_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIComplaintUseCase(ctrl)
	h := NewComplaintHandler(uc)

	uc.EXPECT().List(gomock.Any(), testManager, entities.Filter{OrderID: "o-1"}).Return(nil, nil)
	uc.EXPECT().GetByID(gomock.Any(), "1", testManager).Return(entities.Complaint{ID: "1"}, nil)

	w := serve(staffRouter(http.MethodGet, "/v1/complaints", h.ListComplaints), http.MethodGet, "/v1/complaints?order_id=o-1", "", false)
	expectStatus(t, w, http.StatusOK)
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %s", w.Body.String())
	}

	w = serve(staffRouter(http.MethodGet, "/v1/complaints/:id", h.GetComplaint), http.MethodGet, "/v1/complaints/1", "", false)
	expectStatus(t, w, http.StatusOK)
}
