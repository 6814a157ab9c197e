package notice

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"NoticeBoard/internal/form"
)

// Design holds the purely presentational settings of a notice and its form.
// Core logic never reads these.
type Design struct {
	FontFamily    string `bson:"font_family" json:"fontFamily"`
	HeaderColor   string `bson:"header_color" json:"headerColor"`
	TitleFontSize string `bson:"title_font_size" json:"titleFontSize"`
	TitleBold     bool   `bson:"title_bold" json:"titleBold"`
	TitleItalic   bool   `bson:"title_italic" json:"titleItalic"`
	BodyFontSize  string `bson:"body_font_size" json:"bodyFontSize"`
	BodyBold      bool   `bson:"body_bold" json:"bodyBold"`
	BodyItalic    bool   `bson:"body_italic" json:"bodyItalic"`
}

// DefaultDesign mirrors the Google-Forms-like defaults the admin editor starts from.
func DefaultDesign() Design {
	return Design{
		FontFamily:    "Roboto",
		HeaderColor:   "#673ab7",
		TitleFontSize: "24pt",
		BodyFontSize:  "11pt",
	}
}

// Notice is an admin-authored announcement with an optional registration form
// described by an ordered list of field descriptors.
type Notice struct {
	ID                 primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Title              string                 `bson:"title" json:"title"`
	Content            string                 `bson:"content" json:"content"`
	ShortDescription   string                 `bson:"short_description,omitempty" json:"shortDescription,omitempty"`
	FormTitle          string                 `bson:"form_title,omitempty" json:"formTitle,omitempty"`
	FormDescription    string                 `bson:"form_description,omitempty" json:"formDescription,omitempty"`
	Date               time.Time              `bson:"date" json:"date"`
	AcceptingResponses bool                   `bson:"accepting_responses" json:"acceptingResponses"`
	NoticeBgImage      string                 `bson:"notice_bg_image,omitempty" json:"noticeBgImage,omitempty"`
	FormBgImage        string                 `bson:"form_bg_image,omitempty" json:"formBgImage,omitempty"`
	Design             Design                 `bson:"design" json:"design"`
	FormFields         []form.FieldDescriptor `bson:"form_fields" json:"formFields"`
}

// CreateNoticeRequest is the payload for creating a notice.
type CreateNoticeRequest struct {
	Title              string                 `json:"title" validate:"required"`
	Content            string                 `json:"content" validate:"required"`
	ShortDescription   string                 `json:"shortDescription"`
	FormTitle          string                 `json:"formTitle"`
	FormDescription    string                 `json:"formDescription"`
	AcceptingResponses *bool                  `json:"acceptingResponses"`
	NoticeBgImage      string                 `json:"noticeBgImage"`
	FormBgImage        string                 `json:"formBgImage"`
	Design             *Design                `json:"design"`
	FormFields         []form.FieldDescriptor `json:"formFields"`
}
