package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UsageRecord is one submission of the household energy-usage form,
// stored in the user-inputs collection and owned by exactly one user.
type UsageRecord struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DateCreated         time.Time          `bson:"dateCreated" json:"dateCreated"`
	UserID              primitive.ObjectID `bson:"userId" json:"-"`
	LightingType        string             `bson:"lightingType" json:"lightingType"`
	NaturalLightUse     string             `bson:"naturalLightUse" json:"naturalLightUse"`
	TintUse             string             `bson:"tintUse" json:"tintUse"`
	ThermostatType      string             `bson:"thermostatType" json:"thermostatType"`
	SmartPlugUse        string             `bson:"smartPlugUse" json:"smartPlugUse"`
	WaterHeaterTemp     int                `bson:"waterHeaterTemp" json:"waterHeaterTemp"`
	SinkUsage           int                `bson:"sinkUsage" json:"sinkUsage"`
	ShowerLength        int                `bson:"showerLength" json:"showerLength"`
	AirConditioningTemp int                `bson:"airConditioningTemp" json:"airConditioningTemp"`
	EatingOutCount      int                `bson:"eatingOutCount" json:"eatingOutCount"`
}
