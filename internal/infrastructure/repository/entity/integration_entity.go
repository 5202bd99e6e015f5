package entity

import (
	"time"

	"shopify-mcp-layer/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoIntegrationDoc represents an integration in MongoDB. AccessToken is
// stored encrypted; the repository never sees plaintext.
type MongoIntegrationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Key         string             `bson:"key"`
	ShopDomain  string             `bson:"shopDomain"`
	AccessToken string             `bson:"accessToken"`
	APIVersion  string             `bson:"apiVersion"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// ToDomain converts the MongoDB document to a domain entity
func (d *MongoIntegrationDoc) ToDomain() *domain.Integration {
	return &domain.Integration{
		ID:          d.ID.Hex(),
		Key:         d.Key,
		ShopDomain:  d.ShopDomain,
		AccessToken: d.AccessToken,
		APIVersion:  d.APIVersion,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// MongoIntegrationDocFromDomain converts a domain entity to a MongoDB document
func MongoIntegrationDocFromDomain(integration *domain.Integration) *MongoIntegrationDoc {
	doc := &MongoIntegrationDoc{
		Key:         integration.Key,
		ShopDomain:  integration.ShopDomain,
		AccessToken: integration.AccessToken,
		APIVersion:  integration.APIVersion,
		CreatedAt:   integration.CreatedAt,
		UpdatedAt:   integration.UpdatedAt,
	}

	if integration.ID != "" {
		if objID, err := primitive.ObjectIDFromHex(integration.ID); err == nil {
			doc.ID = objID
		}
	}

	return doc
}
