package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

const bookingsCollection = "bookings"

// BookingRepository implements ports.BookingRepository on MongoDB. There is
// no delete method: bookings are never hard-deleted.
type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

type mongoBooking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Service   string             `bson:"service"`
	Date      time.Time          `bson:"date"`
	TimeSlot  string             `bson:"time_slot"`
	Notes     string             `bson:"notes,omitempty"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mb *mongoBooking) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:        mb.ID.Hex(),
		UserID:    mb.UserID.Hex(),
		Name:      mb.Name,
		Email:     mb.Email,
		Phone:     mb.Phone,
		Service:   mb.Service,
		Date:      mb.Date.UTC(),
		TimeSlot:  mb.TimeSlot,
		Notes:     mb.Notes,
		Status:    domain.BookingStatus(mb.Status),
		CreatedAt: mb.CreatedAt.UTC(),
		UpdatedAt: mb.UpdatedAt.UTC(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	ownerID, err := primitive.ObjectIDFromHex(b.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid owner id", domain.ErrValidation)
	}

	doc := mongoBooking{
		UserID:    ownerID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Service:   b.Service,
		Date:      b.Date.UTC(),
		TimeSlot:  b.TimeSlot,
		Notes:     b.Notes,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.UTC(),
		UpdatedAt: b.UpdatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	created := *b
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	var mb mongoBooking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return mb.toDomain(), nil
}

// UpdateStatus sets the status in a single document update and returns the
// post-update booking, so the caller sees exactly the persisted version.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mb mongoBooking
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return mb.toDomain(), nil
}

type mongoBookingWithOwner struct {
	mongoBooking `bson:",inline"`
	Owner        struct {
		Name  string `bson:"name"`
		Email string `bson:"email"`
	} `bson:"owner"`
}

// ListAll joins the owning user's current name and email via $lookup and
// sorts by requested date, newest first.
func (r *BookingRepository) ListAll(ctx context.Context) ([]*domain.BookingWithOwner, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$owner",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := make([]*domain.BookingWithOwner, 0)
	for cur.Next(ctx) {
		var row mongoBookingWithOwner
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, &domain.BookingWithOwner{
			Booking:    *row.mongoBooking.toDomain(),
			OwnerName:  row.Owner.Name,
			OwnerEmail: row.Owner.Email,
		})
	}
	return bookings, cur.Err()
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []*domain.Booking{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := make([]*domain.Booking, 0)
	for cur.Next(ctx) {
		var mb mongoBooking
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, mb.toDomain())
	}
	return bookings, cur.Err()
}

// EnsureIndexes creates the indexes backing the two list queries.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
