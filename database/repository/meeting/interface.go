package meetingRepo

import (
	"context"

	"meetsync/database"
	"meetsync/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MeetingRecordRepository persists AI scheduling results per user.
type MeetingRecordRepository interface {
	Create(ctx context.Context, record models.MeetingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.MeetingRecord, error)
	GetByUserID(ctx context.Context, userID string) ([]models.MeetingRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoMeetingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingRepo returns a new MeetingRecordRepository instance using MongoDB.
func NewMongoMeetingRepo() MeetingRecordRepository {
	db := database.MongoClient.Database("meetsync")
	return &mongoMeetingRepo{
		coll: db.Collection("meetings"),
	}
}
