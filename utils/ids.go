package utils

import (
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	IDSchemeObjectID = "objectid"
	IDSchemeUUID     = "uuid"
)

// IDGenerator returns a new identifier on every call.
type IDGenerator func() string

func NewObjectID() string {
	return primitive.NewObjectID().Hex()
}

func NewUUID() string {
	return uuid.NewString()
}

func NewIDGenerator(scheme string) (IDGenerator, error) {
	switch scheme {
	case "", IDSchemeObjectID:
		return NewObjectID, nil
	case IDSchemeUUID:
		return NewUUID, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", scheme)
	}
}
