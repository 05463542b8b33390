package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ExamPaper is a user-contributed exam paper resource document.
// Submissions are immutable and are not deduplicated.
type ExamPaper struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	// Metadata carries free-form descriptive attributes of the paper
	// (e.g. institute, year, subject) as submitted by the contributor.
	Metadata map[string]string `bson:"metadata" json:"metadata"`

	// ResourceURL is the absolute URL of the paper resource.
	// Validated before the document is persisted.
	ResourceURL string `bson:"resource_url" json:"resource_url"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the ExamPaper model.
func (p ExamPaper) CollectionName() string {
	return "exam_papers"
}
