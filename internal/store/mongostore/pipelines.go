package mongostore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hospital-api-server/internal/models"
)

func stage(op string, value interface{}) bson.D {
	return bson.D{{Key: op, Value: value}}
}

func lookup(from, localField, foreignField, as string) bson.D {
	return stage("$lookup", bson.M{
		"from":         from,
		"localField":   localField,
		"foreignField": foreignField,
		"as":           as,
	})
}

func unwind(path string, preserveEmpty bool) bson.D {
	if !preserveEmpty {
		return stage("$unwind", path)
	}
	return stage("$unwind", bson.M{"path": path, "preserveNullAndEmptyArrays": true})
}

// workloadPipeline runs on appointments.
func workloadPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		stage("$group", bson.M{"_id": "$doctorId", "totalAppointments": bson.M{"$sum": 1}}),
		lookup(doctorsCollection, "_id", "_id", "doctor"),
		unwind("$doctor", false),
		stage("$project", bson.M{
			"doctorName":        "$doctor.name",
			"specialty":         "$doctor.specialty",
			"totalAppointments": 1,
		}),
		stage("$sort", bson.D{{Key: "doctorName", Value: 1}, {Key: "_id", Value: 1}}),
	}
}

// historyPipeline runs on patients.
func historyPipeline(patientID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.M{"_id": patientID}),
		lookup(appointmentsCollection, "_id", "patientId", "appointments"),
		unwind("$appointments", true),
		lookup(doctorsCollection, "appointments.doctorId", "_id", "doctorInfo"),
		unwind("$doctorInfo", true),
		stage("$sort", bson.D{{Key: "appointments.appointmentDate", Value: 1}}),
		stage("$project", bson.M{
			"name":            1,
			"medicalHistory":  1,
			"appointmentDate": "$appointments.appointmentDate",
			"status":          "$appointments.status",
			"doctorName":      "$doctorInfo.name",
			"specialty":       "$doctorInfo.specialty",
		}),
	}
}

// specialtyPipeline runs on appointments.
func specialtyPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		lookup(doctorsCollection, "doctorId", "_id", "doctor"),
		unwind("$doctor", false),
		stage("$group", bson.M{"_id": "$doctor.specialty", "total": bson.M{"$sum": 1}}),
		stage("$sort", bson.D{{Key: "total", Value: -1}, {Key: "_id", Value: 1}}),
		stage("$limit", int64(limit)),
		stage("$project", bson.M{"_id": 0, "specialty": "$_id", "totalAppointments": "$total"}),
	}
}

// cancellationPipeline runs on appointments.
func cancellationPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		stage("$group", bson.M{
			"_id":   "$doctorId",
			"total": bson.M{"$sum": 1},
			"cancelled": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", string(models.StatusCancelled)}}, 1, 0},
			}},
		}),
		lookup(doctorsCollection, "_id", "_id", "doctor"),
		unwind("$doctor", false),
		stage("$project", bson.M{
			"doctorName": "$doctor.name",
			"specialty":  "$doctor.specialty",
			"total":      1,
			"cancelled":  1,
		}),
		stage("$sort", bson.D{{Key: "doctorName", Value: 1}, {Key: "_id", Value: 1}}),
	}
}

// monthlyPipeline runs on appointments. $year and $month use UTC.
func monthlyPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		stage("$group", bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$appointmentDate"},
				"month": bson.M{"$month": "$appointmentDate"},
			},
			"count": bson.M{"$sum": 1},
		}),
		stage("$sort", bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.month", Value: 1}}),
		stage("$project", bson.M{"_id": 0, "year": "$_id.year", "month": "$_id.month", "count": 1}),
	}
}

// frequentPatientsPipeline runs on appointments.
func frequentPatientsPipeline(since time.Time, minVisits int64) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.M{
			"appointmentDate": bson.M{"$gte": since},
			"status":          bson.M{"$ne": string(models.StatusCancelled)},
		}),
		stage("$group", bson.M{"_id": "$patientId", "visits": bson.M{"$sum": 1}}),
		stage("$match", bson.M{"visits": bson.M{"$gt": minVisits}}),
		lookup(patientsCollection, "_id", "_id", "patient"),
		unwind("$patient", false),
		stage("$project", bson.M{"name": "$patient.name", "age": "$patient.age", "visits": 1}),
		stage("$sort", bson.D{{Key: "visits", Value: -1}, {Key: "name", Value: 1}}),
	}
}

// availabilityPipeline runs on doctors.
func availabilityPipeline(day string) mongo.Pipeline {
	return mongo.Pipeline{
		unwind("$availability", false),
		stage("$match", bson.M{"availability": day}),
		stage("$project", bson.M{"name": 1, "specialty": 1, "availability": 1}),
		stage("$sort", bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}),
	}
}
