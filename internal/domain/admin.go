package domain

// OrphanedUser is an auth account with no matching driver record.
type OrphanedUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// DriverWithoutUser is a driver record with no matching auth account.
type DriverWithoutUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Nama  string `json:"nama"`
}

// SyncReport is the record store's consistency check between the auth-account
// table and the driver table. Informational; any repair is a separate call.
type SyncReport struct {
	TotalUsers               int                 `json:"total_users"`
	TotalDrivers             int                 `json:"total_drivers"`
	OrphanedUsersCount       int                 `json:"orphaned_users_count"`
	OrphanedUsers            []OrphanedUser      `json:"orphaned_users"`
	DriversWithoutUsersCount int                 `json:"drivers_without_users_count"`
	DriversWithoutUsers      []DriverWithoutUser `json:"drivers_without_users"`
	IsSynchronized           bool                `json:"is_synchronized"`
}

// CleanupResult reports the outcome of deleting orphaned auth accounts.
type CleanupResult struct {
	Message       string   `json:"message"`
	DeletedCount  int      `json:"deleted_count"`
	DeletedEmails []string `json:"deleted_emails"`
}
