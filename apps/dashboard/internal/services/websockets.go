package services

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/dtos"
	wstools "github.com/xdoubleu/essentia/v2/pkg/communication/wstools"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
)

// WebSocketService publishes the state of every sync job on a topic named
// after the job.
type WebSocketService struct {
	allowedOrigins []string
	handler        *wstools.WebSocketHandler[dtos.SubscribeSyncDto]
	jobQueue       *threading.JobQueue
	topics         map[string]*wstools.Topic
}

func NewWebSocketService(
	logger *slog.Logger,
	allowedOrigins []string,
	jobQueue *threading.JobQueue,
) *WebSocketService {
	handler := wstools.CreateWebSocketHandler[dtos.SubscribeSyncDto](
		logger,
		1,
		100, //nolint:mnd //no magic number
	)

	return &WebSocketService{
		allowedOrigins: allowedOrigins,
		handler:        &handler,
		jobQueue:       jobQueue,
		topics:         make(map[string]*wstools.Topic),
	}
}

func (service *WebSocketService) Handler() http.HandlerFunc {
	return service.handler.Handler()
}

// UpdateState is the job queue callback.
func (service *WebSocketService) UpdateState(
	id string,
	isRunning bool,
	lastRunTime *time.Time,
) {
	topic, ok := service.topics[id]
	if !ok {
		return
	}

	topic.EnqueueEvent(dtos.SyncStateDto{
		Job:       id,
		IsSyncing: isRunning,
		LastSync:  lastRunTime,
	})
}

func (service *WebSocketService) RegisterTopics(jobIDs []string) {
	for _, jobID := range jobIDs {
		topic, err := service.handler.AddTopic(
			jobID,
			service.allowedOrigins,
			func(_ context.Context, tp *wstools.Topic) (any, error) {
				return service.State(tp.Name), nil
			},
		)
		if err != nil {
			panic(err)
		}
		service.topics[jobID] = topic
	}
}

func (service *WebSocketService) State(jobID string) dtos.SyncStateDto {
	isSyncing, lastSync := service.jobQueue.FetchState(jobID)

	return dtos.SyncStateDto{
		Job:       jobID,
		IsSyncing: isSyncing,
		LastSync:  lastSync,
	}
}
