package db

// Postgres is the authoritative store; Mongo only backs the raw feed
// archive and is optional.
type DB interface {
	Connect() error
	Disconnect() error
}
