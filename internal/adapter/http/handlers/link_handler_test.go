package handlers

import (
	"net/http"
	"testing"

	"supplyops/internal/adapter/http/dto/response"
	"supplyops/internal/adapter/http/handlers/mocks"
	"supplyops/internal/domain/entities"
	"supplyops/internal/domain/errs"

	"go.uber.org/mock/gomock"
)

func TestLinkHandler_RequestLink(t *testing.T) {
	t.Run("missing supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILinkUseCase(ctrl)
		r := publicRouter(http.MethodPost, "/v1/links", NewLinkHandler(uc).RequestLink)

		w := serve(r, http.MethodPost, "/v1/links", `{"consumer_id":"c-1"}`, true)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILinkUseCase(ctrl)
		r := publicRouter(http.MethodPost, "/v1/links", NewLinkHandler(uc).RequestLink)

		uc.EXPECT().Request(gomock.Any(), entities.ConsumerLink{ConsumerID: "c-1", SupplierID: "s-1"}, "please link us").
			Return(entities.ConsumerLink{
				ID: "3", ConsumerID: "c-1", SupplierID: "s-1", Status: entities.LinkStatusPending, Version: 1,
				Notes: []entities.Note{{Text: "please link us"}},
			}, nil)

		w := serve(r, http.MethodPost, "/v1/links", `{"consumer_id":"c-1","supplier_id":"s-1","message":"please link us"}`, true)
		expectStatus(t, w, http.StatusCreated)
		body := decode[response.LinkResponse](t, w)
		if body.Status != "PENDING" || len(body.Notes) != 1 {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestLinkHandler_Transitions(t *testing.T) {
	t.Run("unblock forwards reason and version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILinkUseCase(ctrl)
		r := staffRouter(http.MethodPatch, "/v1/links/:id/unblock", NewLinkHandler(uc).UnblockLink)

		uc.EXPECT().Unblock(gomock.Any(), "3", managerCall(2), "Paid overdue invoice").
			Return(entities.ConsumerLink{ID: "3", Status: entities.LinkStatusActive, Version: 3}, nil)

		w := serve(r, http.MethodPatch, "/v1/links/3/unblock", `{"version":2,"reason":"Paid overdue invoice"}`, false)
		expectStatus(t, w, http.StatusOK)
		if body := decode[response.LinkResponse](t, w); body.Status != "ACTIVE" || body.Version != 3 {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("approve ignores reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILinkUseCase(ctrl)
		r := staffRouter(http.MethodPatch, "/v1/links/:id/approve", NewLinkHandler(uc).ApproveLink)

		uc.EXPECT().Approve(gomock.Any(), "3", managerCall(0)).
			Return(entities.ConsumerLink{ID: "3", Status: entities.LinkStatusActive, Version: 2}, nil)

		w := serve(r, http.MethodPatch, "/v1/links/3/approve", `{"reason":"ignored"}`, false)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("block from pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILinkUseCase(ctrl)
		r := staffRouter(http.MethodPatch, "/v1/links/:id/block", NewLinkHandler(uc).BlockLink)

		uc.EXPECT().Block(gomock.Any(), "3", managerCall(0), "").
			Return(entities.ConsumerLink{}, errs.Transition("link", "3", "PENDING", "BLOCKED"))

		w := serve(r, http.MethodPatch, "/v1/links/3/block", "", false)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("unlink denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILinkUseCase(ctrl)
		r := staffRouter(http.MethodPatch, "/v1/links/:id/unlink", NewLinkHandler(uc).UnlinkConsumer)

		uc.EXPECT().Unlink(gomock.Any(), "3", gomock.Any(), "").
			Return(entities.ConsumerLink{}, &errs.PermissionError{Role: "SALES", Action: "link:unlink"})

		w := serve(r, http.MethodPatch, "/v1/links/3/unlink", "", false)
		expectStatus(t, w, http.StatusForbidden)
	})

	t.Run("reject unknown link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILinkUseCase(ctrl)
		r := staffRouter(http.MethodPatch, "/v1/links/:id/reject", NewLinkHandler(uc).RejectLink)

		uc.EXPECT().Reject(gomock.Any(), "9", gomock.Any(), "").
			Return(entities.ConsumerLink{}, errs.NotFound("link", "9"))

		w := serve(r, http.MethodPatch, "/v1/links/9/reject", "", false)
		expectStatus(t, w, http.StatusNotFound)
	})
}

func TestLinkHandler_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILinkUseCase(ctrl)
	h := NewLinkHandler(uc)

	uc.EXPECT().List(gomock.Any(), testManager, entities.Filter{Status: "BLOCKED"}).
		Return([]entities.ConsumerLink{{ID: "3"}}, nil)
	uc.EXPECT().GetByID(gomock.Any(), "3", testManager).
		Return(entities.ConsumerLink{ID: "3", Status: entities.LinkStatusBlocked}, nil)

	w := serve(staffRouter(http.MethodGet, "/v1/links", h.ListLinks), http.MethodGet, "/v1/links?status=BLOCKED", "", false)
	expectStatus(t, w, http.StatusOK)
	if body := decode[[]response.LinkResponse](t, w); len(body) != 1 {
		t.Fatalf("unexpected body %+v", body)
	}

	w = serve(staffRouter(http.MethodGet, "/v1/links/:id", h.GetLink), http.MethodGet, "/v1/links/3", "", false)
	expectStatus(t, w, http.StatusOK)
}
