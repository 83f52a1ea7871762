package receipts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/repairshop/internal/config"
	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/pkg/clients"
)

//go:generate mockgen -source=receipts.go -destination=mock_receipts.go -package=receipts

const (
	maxRetries    = 3
	retryInterval = time.Second
	batchLimit    = 1000
	checkInterval = 5 * time.Second
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

type OrderRepo interface {
	FindUncheckedReceipts(ctx context.Context, limit uint32) ([]domain.Order, error)
	UpdateReceiptStatuses(ctx context.Context, statuses map[int]domain.ReceiptStatus) error
}

// Response is the document service answer for one receipt number.
type Response struct {
	Exists   bool            `json:"exists"`
	Document json.RawMessage `json:"document,omitempty"`
}

// Service polls paid orders whose receipt has not been looked up yet and
// stores whether the document service knows it. A failed lookup leaves the
// order unchecked for the next tick.
type Service struct {
	url            string
	orderRepo      OrderRepo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
	retryInterval  time.Duration
	inFlight       sync.Map
}

func New(cfg *config.Config, orderRepo OrderRepo, client clients.HTTPClientI) *Service {
	interval := cfg.ReceiptCheckInterval
	if interval <= 0 {
		interval = checkInterval
	}
	return &Service{
		url:            cfg.ReceiptAddress,
		orderRepo:      orderRepo,
		client:         client,
		limit:          batchLimit,
		workerPool:     NewWorkerPool(cfg.ReceiptWorkers),
		updateInterval: interval,
		retryInterval:  retryInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("receipt checker started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("receipt checker stopped")
			return
		case <-ticker.C:
			s.checkReceipts(ctx)
		}
	}
}

func (s *Service) checkReceipts(ctx context.Context) {
	orders, err := s.orderRepo.FindUncheckedReceipts(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch unchecked receipts", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order
		if order.ReceiptNumber == nil || *order.ReceiptNumber == "" {
			continue
		}
		if _, loaded := s.inFlight.LoadOrStore(order.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(order.ID)
				return s.checkOrder(ctx, order)
			})
			if err != nil {
				s.inFlight.Delete(order.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error scheduling receipt checks", zap.Error(err))
	}
}

func (s *Service) checkOrder(ctx context.Context, order domain.Order) error {
	status, err := s.lookup(ctx, *order.ReceiptNumber)
	if err != nil {
		return fmt.Errorf("receipt %s of order %d: %w", *order.ReceiptNumber, order.ID, err)
	}
	if status == domain.ReceiptUnchecked {
		return nil
	}
	if err := s.orderRepo.UpdateReceiptStatuses(ctx, map[int]domain.ReceiptStatus{order.ID: status}); err != nil {
		return fmt.Errorf("failed to store receipt status of order %d: %w", order.ID, err)
	}
	zap.L().Info("receipt checked", zap.Int("order_id", order.ID), zap.String("status", string(status)))
	return nil
}

// lookup returns ReceiptUnchecked when the service asked to slow down; the
// order is picked up again on a later tick.
func (s *Service) lookup(ctx context.Context, number string) (domain.ReceiptStatus, error) {
	endpoint := s.url + "/api/documents/" + url.PathEscape(number)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.ReceiptUnchecked, err
		}

		statusCode, respBody, respHeaders, err := s.client.Get(endpoint, nil)
		if err != nil {
			lastErr = err
			if attempt < maxRetries {
				s.wait(ctx, s.retryInterval*time.Duration(attempt))
			}
			continue
		}

		switch statusCode {
		case http.StatusOK:
			var response Response
			if err := json.Unmarshal(respBody, &response); err != nil {
				return domain.ReceiptUnchecked, fmt.Errorf("failed to parse response body: %w", err)
			}
			if response.Exists {
				return domain.ReceiptFound, nil
			}
			return domain.ReceiptMissing, nil
		case http.StatusNotFound:
			return domain.ReceiptMissing, nil
		case http.StatusTooManyRequests:
			s.wait(ctx, s.retryAfter(respHeaders, attempt))
			return domain.ReceiptUnchecked, nil
		default:
			zap.L().Error("unexpected status code", zap.Int("status", statusCode), zap.String("receipt", number))
			return domain.ReceiptUnchecked, ErrUnexpectedStatus
		}
	}
	return domain.ReceiptUnchecked, fmt.Errorf("lookup failed after %d retries: %w", maxRetries, lastErr)
}

func (s *Service) retryAfter(respHeaders http.Header, attempt int) time.Duration {
	retryAfter := s.retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn("rate limit detected", zap.Duration("retry_after", retryAfter))
	return retryAfter
}

func (s *Service) wait(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
