package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"
	reqdto "github.com/Sannikov1993/PosResto-sub020/internal/handler/dto/request"
	resdto "github.com/Sannikov1993/PosResto-sub020/internal/handler/dto/response"
	"github.com/Sannikov1993/PosResto-sub020/internal/handler/httperr"
	"github.com/Sannikov1993/PosResto-sub020/internal/handler/middleware"
	"github.com/Sannikov1993/PosResto-sub020/internal/infra"
	"github.com/Sannikov1993/PosResto-sub020/internal/infra/events"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/metrics"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/commands"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	lifecycle commands.ReservationLifecycle
	intake    commands.ReservationIntake
	deposits  commands.DepositCommands
	queries   queries.ReservationQueries
	publisher events.Publisher
	metrics   *metrics.Metrics
}

func NewReservationHandler(
	lifecycle commands.ReservationLifecycle,
	intake commands.ReservationIntake,
	deposits commands.DepositCommands,
	queries queries.ReservationQueries,
	publisher events.Publisher,
	metrics *metrics.Metrics,
) *ReservationHandler {
	return &ReservationHandler{
		lifecycle: lifecycle,
		intake:    intake,
		deposits:  deposits,
		queries:   queries,
		publisher: publisher,
		metrics:   metrics,
	}
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	reservedDate, err := req.ParseReservedDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"reserved_date must be formatted as YYYY-MM-DD", nil)
		return
	}

	res, err := h.intake.CreateReservation(c.Request.Context(), commands.CreateReservationParams{
		TableID:        req.TableID,
		LinkedTableIDs: req.LinkedTableIDs,
		GuestName:      req.GuestName,
		GuestPhone:     req.GuestPhone,
		GuestCount:     req.GuestCount,
		ReservedDate:   reservedDate,
		TimeFrom:       req.TimeFrom,
		TimeTo:         req.TimeTo,
		DepositCents:   req.DepositCents,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidTimeWindow),
			errors.Is(err, reservation.ErrInvalidGuestCount),
			errors.Is(err, reservation.ErrNegativeDeposit):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, commands.ErrTableTooSmall):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
				"Table capacity is below the guest count", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Table not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				"Internal server error", nil)
		}
		return
	}

	resp := resdto.FromReservation(res)
	c.JSON(http.StatusCreated, resp)
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *ReservationHandler) ListReservations(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = time.Now().Format("2006-01-02")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"date must be formatted as YYYY-MM-DD", nil)
		return
	}

	items, err := h.queries.ListByDate(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", nil)
		return
	}

	if items == nil {
		items = []*queries.ReservationListItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *ReservationHandler) MarkDepositPaid(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req reqdto.DepositPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.deposits.MarkDepositPaid(c.Request.Context(), id, req.PaymentMethod)
	if err != nil {
		h.respondActionError(c, "deposit_paid", err)
		return
	}

	h.metrics.CountAction("deposit_paid", "success")
	c.JSON(http.StatusOK, resdto.FromActionResult(result))
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(c)

	result, err := h.lifecycle.Confirm(c.Request.Context(), id, actorID)
	if err != nil {
		h.respondActionError(c, "confirm", err)
		return
	}

	h.finishAction(c, "confirm", result, &actorID)
}

func (h *ReservationHandler) Seat(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(c)

	req := reqdto.SeatRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	result, err := h.lifecycle.Seat(c.Request.Context(), id, req.ToOptions(actorID))
	if err != nil {
		h.respondActionError(c, "seat", err)
		return
	}

	h.metrics.CountAction("seat", "success")
	h.publishAction("seat", &result.ActionResult, &actorID)
	for _, tableID := range result.TableIDs {
		h.publisher.TableStatusChanged(events.TableStatusEvent{
			TableID:    tableID,
			Status:     "occupied",
			OccurredAt: time.Now(),
		})
	}
	c.JSON(http.StatusOK, resdto.FromSeatResult(result))
}

func (h *ReservationHandler) Unseat(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(c)

	req := reqdto.UnseatRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	result, err := h.lifecycle.Unseat(c.Request.Context(), id, commands.UnseatOptions{
		Force:   req.Force,
		ActorID: actorID,
	})
	if err != nil {
		h.respondActionError(c, "unseat", err)
		return
	}

	h.finishAction(c, "unseat", result, &actorID)
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(c)

	req := reqdto.CompleteRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	result, err := h.lifecycle.Complete(c.Request.Context(), id, commands.CompleteOptions{
		Force: req.Force,
	})
	if err != nil {
		h.respondActionError(c, "complete", err)
		return
	}

	h.finishAction(c, "complete", result, &actorID)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(c)

	req := reqdto.CancelRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	result, err := h.lifecycle.Cancel(c.Request.Context(), id, req.ToOptions(actorID))
	if err != nil {
		h.respondActionError(c, "cancel", err)
		return
	}

	h.finishAction(c, "cancel", result, &actorID)
}

func (h *ReservationHandler) MarkNoShow(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(c)

	req := reqdto.NoShowRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	result, err := h.lifecycle.MarkNoShow(c.Request.Context(), id, commands.NoShowOptions{
		ForfeitDeposit: req.ForfeitDeposit,
		Notes:          req.Notes,
		ActorID:        actorID,
	})
	if err != nil {
		h.respondActionError(c, "no_show", err)
		return
	}

	h.finishAction(c, "no_show", result, &actorID)
}

func (h *ReservationHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Invalid reservation ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReservationHandler) finishAction(c *gin.Context, action string, result *commands.ActionResult, actorID *uuid.UUID) {
	h.metrics.CountAction(action, "success")
	h.publishAction(action, result, actorID)
	c.JSON(http.StatusOK, resdto.FromActionResult(result))
}

func (h *ReservationHandler) publishAction(action string, result *commands.ActionResult, actorID *uuid.UUID) {
	evt := events.ReservationEvent{
		ReservationID: result.Reservation.ID(),
		TableID:       result.Reservation.TableID(),
		Status:        result.Reservation.Status().String(),
		Action:        action,
		OccurredAt:    time.Now(),
	}
	if actorID != nil && *actorID != uuid.Nil {
		evt.ActorID = actorID
	}
	h.publisher.ReservationChanged(evt)
}

// respondActionError maps the typed lifecycle errors onto the HTTP envelope:
// state conflicts are 409, blocked business preconditions are 422.
func (h *ReservationHandler) respondActionError(c *gin.Context, action string, err error) {
	var invalidTransition *reservation.InvalidTransitionError
	var tableOccupied *reservation.TableOccupiedError
	var validation *reservation.ValidationError

	switch {
	case errors.As(err, &invalidTransition):
		h.metrics.CountAction(action, "invalid_transition")
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid status transition", gin.H{
			"from": invalidTransition.From.String(),
			"to":   invalidTransition.To.String(),
		})
	case errors.As(err, &tableOccupied):
		h.metrics.CountAction(action, "table_occupied")
		httperr.AbortWithError(c, http.StatusConflict, err, "Table is occupied", gin.H{
			"table_id": tableOccupied.TableID,
			"order_id": tableOccupied.OrderID,
		})
	case errors.As(err, &validation):
		h.metrics.CountAction(action, "validation_failed")
		detail := gin.H{"reason": validation.Reason}
		if len(validation.UnpaidOrderIDs) > 0 {
			detail["unpaid_order_ids"] = validation.UnpaidOrderIDs
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			"Business validation failed", detail)
	case errors.Is(err, reservation.ErrDepositNotPending):
		h.metrics.CountAction(action, "invalid_deposit_state")
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Deposit is not awaiting payment", nil)
	case infra.IsKind(err, infra.KindNotFound):
		h.metrics.CountAction(action, "not_found")
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	default:
		h.metrics.CountAction(action, "error")
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", nil)
	}
}
