package mongostore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageNames(p mongo.Pipeline) []string {
	names := make([]string, 0, len(p))
	for _, st := range p {
		names = append(names, st[0].Key)
	}
	return names
}

func stageValue(t *testing.T, p mongo.Pipeline, i int) interface{} {
	t.Helper()
	require.Greater(t, len(p), i)
	return p[i][0].Value
}

func TestWorkloadPipeline(t *testing.T) {
	p := workloadPipeline()
	assert.Equal(t, []string{"$group", "$lookup", "$unwind", "$project", "$sort"}, stageNames(p))
	assert.Equal(t, bson.M{"_id": "$doctorId", "totalAppointments": bson.M{"$sum": 1}}, stageValue(t, p, 0))
	assert.Equal(t, "$doctor", stageValue(t, p, 2), "unmatched doctors are dropped")
}

func TestHistoryPipeline_PreservesEmptyJoins(t *testing.T) {
	id := primitive.NewObjectID()
	p := historyPipeline(id)
	assert.Equal(t, []string{"$match", "$lookup", "$unwind", "$lookup", "$unwind", "$sort", "$project"}, stageNames(p))
	assert.Equal(t, bson.M{"_id": id}, stageValue(t, p, 0))
	assert.Equal(t, bson.M{"path": "$appointments", "preserveNullAndEmptyArrays": true}, stageValue(t, p, 2))
	assert.Equal(t, bson.M{"path": "$doctorInfo", "preserveNullAndEmptyArrays": true}, stageValue(t, p, 4))
}

func TestSpecialtyPipeline_Limit(t *testing.T) {
	p := specialtyPipeline(3)
	assert.Equal(t, []string{"$lookup", "$unwind", "$group", "$sort", "$limit", "$project"}, stageNames(p))
	assert.Equal(t, bson.D{{Key: "total", Value: -1}, {Key: "_id", Value: 1}}, stageValue(t, p, 3))
	assert.Equal(t, int64(3), stageValue(t, p, 4))
}

func TestCancellationPipeline_CountsCancelledStatus(t *testing.T) {
	p := cancellationPipeline()
	group, ok := stageValue(t, p, 0).(bson.M)
	require.True(t, ok)
	cond := group["cancelled"].(bson.M)["$sum"].(bson.M)["$cond"].(bson.A)
	assert.Equal(t, bson.M{"$eq": bson.A{"$status", "Cancelled"}}, cond[0])
}

func TestMonthlyPipeline_SortsChronologically(t *testing.T) {
	p := monthlyPipeline()
	assert.Equal(t, []string{"$group", "$sort", "$project"}, stageNames(p))
	assert.Equal(t, bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.month", Value: 1}}, stageValue(t, p, 1))
}

func TestFrequentPatientsPipeline(t *testing.T) {
	since := time.Date(2024, 4, 19, 0, 0, 0, 0, time.UTC)
	p := frequentPatientsPipeline(since, 3)
	assert.Equal(t, []string{"$match", "$group", "$match", "$lookup", "$unwind", "$project", "$sort"}, stageNames(p))
	assert.Equal(t, bson.M{
		"appointmentDate": bson.M{"$gte": since},
		"status":          bson.M{"$ne": "Cancelled"},
	}, stageValue(t, p, 0))
	assert.Equal(t, bson.M{"visits": bson.M{"$gt": int64(3)}}, stageValue(t, p, 2))
}

func TestAvailabilityPipeline(t *testing.T) {
	p := availabilityPipeline("Monday")
	assert.Equal(t, []string{"$unwind", "$match", "$project", "$sort"}, stageNames(p))
	assert.Equal(t, bson.M{"availability": "Monday"}, stageValue(t, p, 1))
}
