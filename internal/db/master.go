package db

import (
	"context"
	"fmt"
	"os"
	"time"

	model "github.com/glkeru/kvote/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Справочники админки в MongoDB: idols, groups, externalapps
type MasterDB struct {
	mgo    *mongo.Client
	idols  *mongo.Collection
	groups *mongo.Collection
	apps   *mongo.Collection
}

func NewMasterDB() (*MasterDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("KVOTE_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env KVOTE_MONGO is not set")
	}

	options := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database("masterDB")

	return &MasterDB{
		mgo:    client,
		idols:  db.Collection("idols"),
		groups: db.Collection("groups"),
		apps:   db.Collection("externalapps"),
	}, nil
}

func (m *MasterDB) ListIdols(ctx context.Context) ([]model.Idol, error) {
	var idols []model.Idol
	result, err := m.idols.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	for result.Next(ctx) {
		var idol model.Idol
		err := result.Decode(&idol)
		if err != nil {
			return nil, err
		}
		idols = append(idols, idol)
	}
	return idols, nil
}

func (m *MasterDB) SaveIdol(ctx context.Context, idol model.Idol) (model.Idol, error) {
	// пустой ID - новая запись
	if idol.ID == uuid.Nil {
		idol.ID = uuid.New()
		idol.CreatedAt = time.Now()
		idol.UpdatedAt = idol.CreatedAt
		_, err := m.idols.InsertOne(ctx, idol)
		return idol, err
	}
	idol.UpdatedAt = time.Now()
	filter := bson.M{"id": idol.ID}
	res, err := m.idols.ReplaceOne(ctx, filter, idol)
	if err != nil {
		return idol, err
	}
	if res.MatchedCount == 0 {
		return idol, fmt.Errorf("idol %w", model.ErrNotFound)
	}
	return idol, nil
}

func (m *MasterDB) DeleteIdol(ctx context.Context, id uuid.UUID) error {
	res, err := m.idols.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("idol %w", model.ErrNotFound)
	}
	return nil
}

func (m *MasterDB) ListGroups(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	result, err := m.groups.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	for result.Next(ctx) {
		var group model.Group
		err := result.Decode(&group)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (m *MasterDB) SaveGroup(ctx context.Context, group model.Group) (model.Group, error) {
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
		group.CreatedAt = time.Now()
		group.UpdatedAt = group.CreatedAt
		_, err := m.groups.InsertOne(ctx, group)
		return group, err
	}
	group.UpdatedAt = time.Now()
	res, err := m.groups.ReplaceOne(ctx, bson.M{"id": group.ID}, group)
	if err != nil {
		return group, err
	}
	if res.MatchedCount == 0 {
		return group, fmt.Errorf("group %w", model.ErrNotFound)
	}
	return group, nil
}

func (m *MasterDB) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	res, err := m.groups.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("group %w", model.ErrNotFound)
	}
	return nil
}

func (m *MasterDB) ListApps(ctx context.Context) ([]model.ExternalApp, error) {
	var apps []model.ExternalApp
	result, err := m.apps.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	for result.Next(ctx) {
		var app model.ExternalApp
		err := result.Decode(&app)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (m *MasterDB) SaveApp(ctx context.Context, app model.ExternalApp) (model.ExternalApp, error) {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
		app.CreatedAt = time.Now()
		app.UpdatedAt = app.CreatedAt
		_, err := m.apps.InsertOne(ctx, app)
		return app, err
	}
	app.UpdatedAt = time.Now()
	res, err := m.apps.ReplaceOne(ctx, bson.M{"id": app.ID}, app)
	if err != nil {
		return app, err
	}
	if res.MatchedCount == 0 {
		return app, fmt.Errorf("app %w", model.ErrNotFound)
	}
	return app, nil
}

func (m *MasterDB) DeleteApp(ctx context.Context, id uuid.UUID) error {
	res, err := m.apps.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("app %w", model.ErrNotFound)
	}
	return nil
}
