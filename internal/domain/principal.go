package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Principal is an authenticated identity resolved from a bearer token:
// a donor or an admin, whichever store matched the embedded id.
type Principal struct {
	ID    primitive.ObjectID
	Role  string
	Name  string
	Email string
}
