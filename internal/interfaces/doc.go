// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BirdStore, SightingStore: persistence used by the services (internal/services/interfaces.go)
//   - Counter, Pinger: health check probes (internal/http/stores.go, internal/http/health.go)
//
// ## Service Interfaces
//
//   - BirdService, BirdFinder, SightingService: what each controller calls (internal/http/stores.go)
//
// ## Background Task Interfaces
//
//   - OrphanSightingsCleaner: bulk removal of sightings without a bird (internal/tasks/cleanup_sightings.go)
//   - TaskQueue: enqueue and status lookup for the admin endpoints (internal/http/stores.go)
//   - TaskEnqueuer: what the maintenance scheduler needs (internal/scheduler/maintenance.go)
//
// ## Client Interfaces
//
//   - Executor: where Future continuations run (internal/client/async.go)
//   - cli.Command: a parsed, runnable subcommand (internal/cli/common.go)
//
// # Adding a New Resource
//
//  1. Add the entity in internal/entities and register it in database.NewDatabase's AutoMigrate call.
//
//  2. Create a repository package under internal/database/ with context-aware
//     FindAll, FindByID, Save, DeleteByID and Search methods.
//
//  3. Declare the store interface in internal/services/interfaces.go and add a
//     pass-through service.
//
//  4. Add transfer types and mappers in internal/dto. Never serialize entities directly.
//
//  5. Declare the controller's interface in internal/http/stores.go, write the
//     controller, and register its routes in NewRouter.
//
//  6. Add compile-time checks to checks.go:
//
//     var _ services.NestStore = (*nests.Repository)(nil)
//     var _ http.NestService = (*services.NestService)(nil)
//
//  7. Mirror each route with a method on client.Client.
//
// # Testing
//
// Repository and controller tests run against a real SQLite file in t.TempDir().
// Client and CLI tests start the real router behind httptest.NewServer.
package interfaces
