package adminapi

import (
	"net/url"
	"strconv"

	"github.com/jrsteele09/go-gamehub-client/users"
)

// UserQuery filters the admin user list.
type UserQuery struct {
	Page     int
	PageSize int
	Role     users.Role
	Status   users.Status
	Search   string
	Ordering string
}

func (q UserQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Role != "" {
		v.Set("role", string(q.Role))
	}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Ordering != "" {
		v.Set("ordering", q.Ordering)
	}
	return v
}

// UserOperation is one entry of the platform-wide audit trail. Unlike the
// user's own operation log it carries the acting user and request origin.
type UserOperation struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user"`
	UserName  string `json:"user_name"`
	Content   string `json:"content"`
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	CreatedAt string `json:"created_at"`
}

// OperationQuery filters the platform-wide operation log.
type OperationQuery struct {
	Page     int
	PageSize int
	UserID   int64
}

func (q OperationQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.UserID > 0 {
		v.Set("user", strconv.FormatInt(q.UserID, 10))
	}
	return v
}

// UserStatistics summarizes the user base for the admin dashboard.
type UserStatistics struct {
	Total               int            `json:"total"`
	ByRole              map[string]int `json:"by_role"`
	ByStatus            map[string]int `json:"by_status"`
	RecentRegistrations int            `json:"recent_registrations"`
}

// ReviewQuery filters the content review queue.
type ReviewQuery struct {
	Page     int
	PageSize int
	Status   string
	Search   string
	Ordering string
}

func (q ReviewQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Ordering != "" {
		v.Set("ordering", q.Ordering)
	}
	return v
}

// ReviewStatistics summarizes the review queue.
type ReviewStatistics struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Today    int `json:"today"`
}

// ReviewRecord is one past decision on a piece of content.
type ReviewRecord struct {
	ID        int64  `json:"id"`
	Reviewer  string `json:"reviewer"`
	Action    string `json:"action"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"created_at"`
}

// SystemConfig is one editable configuration entry.
type SystemConfig struct {
	ID          int64  `json:"id"`
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ConfigUpdate patches a single configuration entry.
type ConfigUpdate struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// ConfigBatchItem is one entry of a batch configuration update.
type ConfigBatchItem struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// ConfigQuery filters the configuration list.
type ConfigQuery struct {
	Page     int
	PageSize int
	Search   string
}

func (q ConfigQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// PageQuery is plain pagination with no filters.
type PageQuery struct {
	Page     int
	PageSize int
}

func (q PageQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	return v
}

// LogQuery filters the system log.
type LogQuery struct {
	Page     int
	PageSize int
	Level    string
	Module   string
	Search   string
}

func (q LogQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Level != "" {
		v.Set("level", q.Level)
	}
	if q.Module != "" {
		v.Set("module", q.Module)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// LogEntry is one system log line.
type LogEntry struct {
	ID        int64  `json:"id"`
	Level     string `json:"level"`
	Module    string `json:"module"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// LogStatistics summarizes log volume by level.
type LogStatistics struct {
	Total   int            `json:"total"`
	ByLevel map[string]int `json:"by_level"`
	Today   int            `json:"today"`
}

// BackupJob is one backup task.
type BackupJob struct {
	ID         int64  `json:"id"`
	Status     string `json:"status"`
	FilePath   string `json:"file_path,omitempty"`
	SizeBytes  int64  `json:"size_bytes,omitempty"`
	StartedAt  string `json:"started_at,omitempty"`
	FinishedAt string `json:"finished_at,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// Health reports the backend's component health.
type Health struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
	CheckedAt  string            `json:"checked_at,omitempty"`
}
