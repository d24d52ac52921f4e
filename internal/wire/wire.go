// Package wire provides dependency injection for the quorum application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"log"
	"sync"

	"github.com/example/quorum/internal/adapters/sqlite"
	"github.com/example/quorum/internal/app"
	"github.com/example/quorum/internal/config"
	"github.com/example/quorum/internal/db"
	"github.com/example/quorum/internal/ports/primary"
)

var (
	topicService    primary.TopicService
	delegateService primary.DelegateService
	agendaService   primary.AgendaService
	meetingService  primary.MeetingService
	statsService    primary.StatsService
	documentService primary.DocumentService
	transferService primary.TransferService
	settingsStore   *config.FileSettingsStore
	once            sync.Once
)

// TopicService returns the singleton TopicService instance.
func TopicService() primary.TopicService {
	once.Do(initServices)
	return topicService
}

// DelegateService returns the singleton DelegateService instance.
func DelegateService() primary.DelegateService {
	once.Do(initServices)
	return delegateService
}

// AgendaService returns the singleton AgendaService instance.
func AgendaService() primary.AgendaService {
	once.Do(initServices)
	return agendaService
}

// MeetingService returns the singleton MeetingService instance.
func MeetingService() primary.MeetingService {
	once.Do(initServices)
	return meetingService
}

// StatsService returns the singleton StatsService instance.
func StatsService() primary.StatsService {
	once.Do(initServices)
	return statsService
}

// DocumentService returns the singleton DocumentService instance.
func DocumentService() primary.DocumentService {
	once.Do(initServices)
	return documentService
}

// TransferService returns the singleton TransferService instance.
func TransferService() primary.TransferService {
	once.Do(initServices)
	return transferService
}

// SettingsStore returns the singleton settings store, for the settings
// command which writes preferences directly.
func SettingsStore() *config.FileSettingsStore {
	once.Do(initServices)
	return settingsStore
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	dataDir, err := config.DataDir()
	if err != nil {
		log.Fatalf("failed to resolve data directory: %v", err)
	}

	topicRepo := sqlite.NewTopicRepository(database)
	delegateRepo := sqlite.NewDelegateRepository(database)
	meetingRepo := sqlite.NewMeetingRepository(database)

	drafts := config.NewFileDraftStore(dataDir)
	settingsStore = config.NewFileSettingsStore(dataDir)

	topicService = app.NewTopicService(topicRepo)
	delegateService = app.NewDelegateService(delegateRepo)
	agendaService = app.NewAgendaService(drafts, topicRepo, meetingRepo, delegateService)
	meetingService = app.NewMeetingService(meetingRepo)
	statsService = app.NewStatsService(topicRepo, meetingRepo)
	documentService = app.NewDocumentService(agendaService, delegateService, settingsStore)
	transferService = app.NewTransferService(topicRepo, meetingRepo, meetingService)

	// A fresh database gets the fixed roster.
	if err := delegateService.EnsureSeeded(context.Background()); err != nil {
		log.Fatalf("failed to seed delegate roster: %v", err)
	}
}
