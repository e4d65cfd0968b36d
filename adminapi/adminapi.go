// Package adminapi wraps the administration endpoints: user management,
// the content review queue, and system configuration, logs, backups, and
// health. Every call requires an admin session.
package adminapi

import (
	"context"
	"fmt"

	"github.com/jrsteele09/go-gamehub-client/contentapi"
	"github.com/jrsteele09/go-gamehub-client/gateway"
	"github.com/jrsteele09/go-gamehub-client/users"
	"github.com/pkg/errors"
)

// API calls the administration endpoints through the gateway.
type API struct {
	gw *gateway.Client
}

func New(gw *gateway.Client) *API {
	return &API{gw: gw}
}

// Users fetches a page of user accounts.
func (a *API) Users(ctx context.Context, query UserQuery) (gateway.Page[users.Identity], error) {
	var page gateway.Page[users.Identity]
	if err := a.gw.Get(ctx, "/users/", query.values(), &page); err != nil {
		return gateway.Page[users.Identity]{}, errors.Wrap(err, "[API.Users]")
	}
	return page, nil
}

// User fetches one user account.
func (a *API) User(ctx context.Context, id int64) (*users.Identity, error) {
	var identity users.Identity
	if err := a.gw.Get(ctx, fmt.Sprintf("/users/%d/", id), nil, &identity); err != nil {
		return nil, errors.Wrap(err, "[API.User]")
	}
	return &identity, nil
}

// UpdateUser patches another user's profile.
func (a *API) UpdateUser(ctx context.Context, id int64, patch users.ProfilePatch) (*users.Identity, error) {
	var identity users.Identity
	if err := a.gw.Patch(ctx, fmt.Sprintf("/users/%d/", id), patch, &identity); err != nil {
		return nil, errors.Wrap(err, "[API.UpdateUser]")
	}
	return &identity, nil
}

// SetUserStatus bans or unbans a user. reason is recorded in the audit
// trail.
func (a *API) SetUserStatus(ctx context.Context, id int64, status users.Status, reason string) error {
	body := map[string]string{"status": string(status)}
	if reason != "" {
		body["reason"] = reason
	}
	if err := a.gw.Patch(ctx, fmt.Sprintf("/users/%d/status/", id), body, nil); err != nil {
		return errors.Wrap(err, "[API.SetUserStatus]")
	}
	return nil
}

// SetUserRole changes a user's role.
func (a *API) SetUserRole(ctx context.Context, id int64, role users.Role) error {
	if !role.Valid() {
		return errors.Errorf("[API.SetUserRole] invalid role %q", role)
	}
	body := map[string]string{"role": string(role)}
	if err := a.gw.Patch(ctx, fmt.Sprintf("/users/%d/role/", id), body, nil); err != nil {
		return errors.Wrap(err, "[API.SetUserRole]")
	}
	return nil
}

// UserOperations fetches one user's operation log.
func (a *API) UserOperations(ctx context.Context, id int64) ([]UserOperation, error) {
	var ops []UserOperation
	if err := a.gw.Get(ctx, fmt.Sprintf("/users/%d/operations/", id), nil, &ops); err != nil {
		return nil, errors.Wrap(err, "[API.UserOperations]")
	}
	return ops, nil
}

// AllOperations fetches the platform-wide operation log.
func (a *API) AllOperations(ctx context.Context, query OperationQuery) (gateway.Page[UserOperation], error) {
	var page gateway.Page[UserOperation]
	if err := a.gw.Get(ctx, "/users/operations/", query.values(), &page); err != nil {
		return gateway.Page[UserOperation]{}, errors.Wrap(err, "[API.AllOperations]")
	}
	return page, nil
}

// UserStatistics fetches the user-base summary for the dashboard.
func (a *API) UserStatistics(ctx context.Context) (*UserStatistics, error) {
	var stats UserStatistics
	if err := a.gw.Get(ctx, "/users/statistics/", nil, &stats); err != nil {
		return nil, errors.Wrap(err, "[API.UserStatistics]")
	}
	return &stats, nil
}

// ReviewQueue fetches the content awaiting review.
func (a *API) ReviewQueue(ctx context.Context, query ReviewQuery) (gateway.Page[contentapi.Strategy], error) {
	var page gateway.Page[contentapi.Strategy]
	if err := a.gw.Get(ctx, "/content/review/", query.values(), &page); err != nil {
		return gateway.Page[contentapi.Strategy]{}, errors.Wrap(err, "[API.ReviewQueue]")
	}
	return page, nil
}

// ReviewStatistics summarizes the review queue.
func (a *API) ReviewStatistics(ctx context.Context) (*ReviewStatistics, error) {
	var stats ReviewStatistics
	if err := a.gw.Get(ctx, "/content/review/statistics/", nil, &stats); err != nil {
		return nil, errors.Wrap(err, "[API.ReviewStatistics]")
	}
	return &stats, nil
}

// ApproveContent passes a pending item.
func (a *API) ApproveContent(ctx context.Context, id int64) error {
	if err := a.gw.Post(ctx, fmt.Sprintf("/content/review/%d/approve/", id), nil, nil); err != nil {
		return errors.Wrap(err, "[API.ApproveContent]")
	}
	return nil
}

// RejectContent rejects a pending item with a reason the author sees.
func (a *API) RejectContent(ctx context.Context, id int64, reason string) error {
	body := map[string]string{"reason": reason}
	if err := a.gw.Post(ctx, fmt.Sprintf("/content/review/%d/reject/", id), body, nil); err != nil {
		return errors.Wrap(err, "[API.RejectContent]")
	}
	return nil
}

// ReviewHistory fetches the past decisions on one piece of content.
func (a *API) ReviewHistory(ctx context.Context, id int64) ([]ReviewRecord, error) {
	var records []ReviewRecord
	if err := a.gw.Get(ctx, fmt.Sprintf("/content/review/%d/review_history/", id), nil, &records); err != nil {
		return nil, errors.Wrap(err, "[API.ReviewHistory]")
	}
	return records, nil
}

// SystemConfigs fetches a page of configuration entries.
func (a *API) SystemConfigs(ctx context.Context, query ConfigQuery) (gateway.Page[SystemConfig], error) {
	var page gateway.Page[SystemConfig]
	if err := a.gw.Get(ctx, "/system/config/", query.values(), &page); err != nil {
		return gateway.Page[SystemConfig]{}, errors.Wrap(err, "[API.SystemConfigs]")
	}
	return page, nil
}

// SystemConfig fetches one configuration entry.
func (a *API) SystemConfig(ctx context.Context, id int64) (*SystemConfig, error) {
	var cfg SystemConfig
	if err := a.gw.Get(ctx, fmt.Sprintf("/system/config/%d/", id), nil, &cfg); err != nil {
		return nil, errors.Wrap(err, "[API.SystemConfig]")
	}
	return &cfg, nil
}

// UpdateSystemConfig patches one configuration entry.
func (a *API) UpdateSystemConfig(ctx context.Context, id int64, update ConfigUpdate) (*SystemConfig, error) {
	var cfg SystemConfig
	if err := a.gw.Patch(ctx, fmt.Sprintf("/system/config/%d/", id), update, &cfg); err != nil {
		return nil, errors.Wrap(err, "[API.UpdateSystemConfig]")
	}
	return &cfg, nil
}

// BatchUpdateConfigs applies several configuration changes in one call.
func (a *API) BatchUpdateConfigs(ctx context.Context, items []ConfigBatchItem) error {
	body := map[string][]ConfigBatchItem{"configs": items}
	if err := a.gw.Post(ctx, "/system/config/batch_update/", body, nil); err != nil {
		return errors.Wrap(err, "[API.BatchUpdateConfigs]")
	}
	return nil
}

// SystemLogs fetches a page of system log lines.
func (a *API) SystemLogs(ctx context.Context, query LogQuery) (gateway.Page[LogEntry], error) {
	var page gateway.Page[LogEntry]
	if err := a.gw.Get(ctx, "/system/logs/", query.values(), &page); err != nil {
		return gateway.Page[LogEntry]{}, errors.Wrap(err, "[API.SystemLogs]")
	}
	return page, nil
}

// LogStatistics summarizes log volume.
func (a *API) LogStatistics(ctx context.Context) (*LogStatistics, error) {
	var stats LogStatistics
	if err := a.gw.Get(ctx, "/system/logs/statistics/", nil, &stats); err != nil {
		return nil, errors.Wrap(err, "[API.LogStatistics]")
	}
	return &stats, nil
}

// CleanupLogs deletes log lines older than the given number of days.
func (a *API) CleanupLogs(ctx context.Context, days int) error {
	body := map[string]int{"days": days}
	if err := a.gw.Post(ctx, "/system/logs/cleanup/", body, nil); err != nil {
		return errors.Wrap(err, "[API.CleanupLogs]")
	}
	return nil
}

// BackupJobs fetches the backup task list.
func (a *API) BackupJobs(ctx context.Context, query PageQuery) (gateway.Page[BackupJob], error) {
	var page gateway.Page[BackupJob]
	if err := a.gw.Get(ctx, "/system/backup/", query.values(), &page); err != nil {
		return gateway.Page[BackupJob]{}, errors.Wrap(err, "[API.BackupJobs]")
	}
	return page, nil
}

// CreateBackup starts a new backup task.
func (a *API) CreateBackup(ctx context.Context) (*BackupJob, error) {
	var job BackupJob
	if err := a.gw.Post(ctx, "/system/backup/create_backup/", nil, &job); err != nil {
		return nil, errors.Wrap(err, "[API.CreateBackup]")
	}
	return &job, nil
}

// SystemHealth fetches the backend component health.
func (a *API) SystemHealth(ctx context.Context) (*Health, error) {
	var health Health
	if err := a.gw.Get(ctx, "/system/health/", nil, &health); err != nil {
		return nil, errors.Wrap(err, "[API.SystemHealth]")
	}
	return &health, nil
}
