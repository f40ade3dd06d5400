package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"ordertracker/internal/entities"
	"ordertracker/internal/pkg/inflight"
	"ordertracker/internal/pkg/order_filter"
	"ordertracker/internal/pkg/sales_summary"
	"ordertracker/internal/pkg/status_workflow"
)

const (
	// writes are detached from the request and bounded by this timeout instead
	mutationTimeout = 30 * time.Second

	maxWindowDays = 366
)

// Clock returns the current time in the shop's time zone.
type Clock func() time.Time

type Service struct {
	repository Repository
	storage    AttachmentStorage
	events     EventPublisher
	txManager  TxManager
	clock      Clock
	windowDays int
	inflight   *inflight.Guard
}

func New(
	repository Repository,
	storage AttachmentStorage,
	events EventPublisher,
	txManager TxManager,
	clock Clock,
	defaultWindowDays int,
) *Service {
	if defaultWindowDays <= 0 {
		defaultWindowDays = sales_summary.DefaultWindowDays
	}

	return &Service{
		repository: repository,
		storage:    storage,
		events:     events,
		txManager:  txManager,
		clock:      clock,
		windowDays: defaultWindowDays,
		inflight:   inflight.New(),
	}
}

func (s *Service) ListOrders(ctx context.Context, view entities.ViewState) (*entities.OrderList, error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, err
	}

	orders, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	dateOptions := order_filter.DateOptions(orders)
	view = view.Reconcile(dateOptions)

	return &entities.OrderList{
		Orders:      order_filter.Filtered(orders, view),
		Total:       len(orders),
		DateOptions: dateOptions,
		View:        view,
	}, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Service) CreateOrder(ctx context.Context, form entities.OrderForm) (*entities.SaveResult, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}

	modify, warnings, err := Normalize(form)
	if err != nil {
		return nil, err
	}

	release, err := s.acquire("create:" + session.Email)
	if err != nil {
		return nil, err
	}
	defer release()

	ctx, cancel := detach(ctx)
	defer cancel()

	var created *entities.Order
	err = s.persistWithAttachment(ctx, form.Attachment, &modify, func(ctx context.Context) error {
		var createErr error
		created, createErr = s.repository.Create(ctx, modify)
		return createErr
	})
	if err != nil {
		OrderMutationsTotal.WithLabelValues(entities.OrderActionCreated.String(), "error").Inc()
		return nil, fmt.Errorf("create order: %w", err)
	}
	OrderMutationsTotal.WithLabelValues(entities.OrderActionCreated.String(), "ok").Inc()

	s.publish(ctx, session, created.ID, entities.OrderActionCreated, created.Status)

	orders, err := s.reload(ctx)
	if err != nil {
		return nil, err
	}

	return &entities.SaveResult{
		Order:    findOrder(orders, created.ID, created),
		Orders:   orders,
		Warnings: warnings,
	}, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id int64, form entities.OrderForm) (*entities.SaveResult, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	modify, warnings, err := Normalize(form)
	if err != nil {
		return nil, err
	}
	modify.ID = pointer.To(id)

	release, err := s.acquire(orderKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	ctx, cancel := detach(ctx)
	defer cancel()

	err = s.persistWithAttachment(ctx, form.Attachment, &modify, func(ctx context.Context) error {
		return s.repository.Update(ctx, modify)
	})
	if err != nil {
		OrderMutationsTotal.WithLabelValues(entities.OrderActionUpdated.String(), "error").Inc()
		return nil, fmt.Errorf("update order: %w", err)
	}
	OrderMutationsTotal.WithLabelValues(entities.OrderActionUpdated.String(), "ok").Inc()

	s.publish(ctx, session, id, entities.OrderActionUpdated, *modify.Status)

	orders, err := s.reload(ctx)
	if err != nil {
		return nil, err
	}

	return &entities.SaveResult{
		Order:    findOrder(orders, id, nil),
		Orders:   orders,
		Warnings: warnings,
	}, nil
}

// QuickSetStatus moves an order one step along the quick workflow and returns
// the reloaded order set.
func (s *Service) QuickSetStatus(ctx context.Context, id int64, target entities.OrderStatusType) ([]entities.Order, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	if strings.TrimSpace(target.String()) == "" {
		return nil, fmt.Errorf("%w: empty target", ErrInvalidStatus)
	}
	target, ok := entities.ParseOrderStatus(target.String())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, target)
	}

	release, err := s.acquire(orderKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	ctx, cancel := detach(ctx)
	defer cancel()

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if !status_workflow.CanQuickTransition(current.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, current.Status, target)
		}

		return s.repository.UpdateStatus(ctx, id, target)
	})
	if err != nil {
		OrderMutationsTotal.WithLabelValues(entities.OrderActionStatusChanged.String(), "error").Inc()
		return nil, fmt.Errorf("quick status update: %w", err)
	}
	OrderMutationsTotal.WithLabelValues(entities.OrderActionStatusChanged.String(), "ok").Inc()

	s.publish(ctx, session, id, entities.OrderActionStatusChanged, target)

	return s.reload(ctx)
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) ([]entities.Order, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	release, err := s.acquire(orderKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	ctx, cancel := detach(ctx)
	defer cancel()

	err = s.repository.Delete(ctx, id)
	if err != nil {
		OrderMutationsTotal.WithLabelValues(entities.OrderActionDeleted.String(), "error").Inc()
		return nil, fmt.Errorf("delete order: %w", err)
	}
	OrderMutationsTotal.WithLabelValues(entities.OrderActionDeleted.String(), "ok").Inc()

	s.publish(ctx, session, id, entities.OrderActionDeleted, "")

	return s.reload(ctx)
}

// SalesSummary aggregates the full order set. windowDays of 0 uses the
// configured default.
func (s *Service) SalesSummary(ctx context.Context, windowDays int) (*entities.SalesSummary, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}
	if !session.IsAdmin {
		return nil, ErrAdminRequired
	}

	if windowDays == 0 {
		windowDays = s.windowDays
	}
	if windowDays < 1 || windowDays > maxWindowDays {
		return nil, fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidWindow, windowDays, maxWindowDays)
	}

	orders, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	summary := sales_summary.Aggregate(orders, windowDays, s.clock())
	return &summary, nil
}

// persistWithAttachment uploads the attachment (if any) before write runs and
// removes the uploaded object again when write fails.
func (s *Service) persistWithAttachment(
	ctx context.Context,
	attachment *entities.Attachment,
	modify *entities.OrderModify,
	write func(ctx context.Context) error,
) error {
	if attachment == nil {
		return write(ctx)
	}

	url, err := s.storage.Upload(ctx, *attachment)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAttachmentUpload, err)
	}
	modify.AttachmentURL = pointer.To(url)

	writeErr := write(ctx)
	if writeErr == nil {
		return nil
	}

	if removeErr := s.storage.Remove(ctx, url); removeErr != nil {
		return errors.Join(writeErr, fmt.Errorf("remove orphaned attachment %s: %w", url, removeErr))
	}
	return writeErr
}

func (s *Service) reload(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReloadFailed, err)
	}
	return orders, nil
}

func (s *Service) publish(
	ctx context.Context,
	session entities.Session,
	id int64,
	action entities.OrderAction,
	status entities.OrderStatusType,
) {
	s.events.OrderChanged(ctx, entities.OrderEvent{
		OrderID: id,
		Action:  action,
		Status:  status,
		Actor:   session.Email,
		At:      s.clock(),
	})
}

func (s *Service) acquire(key string) (func(), error) {
	release, err := s.inflight.Acquire(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMutationInFlight, err)
	}
	return release, nil
}

func requireSession(ctx context.Context) (entities.Session, error) {
	session, ok := entities.SessionFromContext(ctx)
	if !ok {
		return entities.Session{}, ErrSessionRequired
	}
	return session, nil
}

func detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), mutationTimeout)
}

func orderKey(id int64) string {
	return "order:" + strconv.FormatInt(id, 10)
}

func findOrder(orders []entities.Order, id int64, fallback *entities.Order) *entities.Order {
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i]
		}
	}
	return fallback
}
