package repositories

// RepositoryProvider bundles all repositories for dependency injection into
// the service container.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	WatchlistRepo   WatchlistRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
}
