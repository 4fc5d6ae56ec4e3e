package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer testimonial shown on the site.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Review    string             `bson:"review" json:"review"`
	Location  string             `bson:"location" json:"location"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TeamMember is a broker/staff bio.
type TeamMember struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name" json:"name"`
	ProfilePicture string             `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	DetailPicture  string             `bson:"team_member_picture,omitempty" json:"team_member_picture,omitempty"`
	Description    string             `bson:"description" json:"description"`
	Designation    string             `bson:"designation" json:"designation"`
	Phone          string             `bson:"phone" json:"phone"`
	Email          string             `bson:"email" json:"email"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	Facebook       string             `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram      string             `bson:"instagram,omitempty" json:"instagram,omitempty"`
	LinkedIn       string             `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	YouTube        string             `bson:"youtube,omitempty" json:"youtube,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Blog is a marketing article with sanitized rich-text body.
type Blog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title      string             `bson:"title" json:"title"`
	CategoryID primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	AuthorID   primitive.ObjectID `bson:"author,omitempty" json:"author,omitempty"`
	Body       string             `bson:"description" json:"description"`
	CoverImage string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BlogCategory groups blog posts.
type BlogCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Author writes blog posts.
type Author struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Avatar    string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Brand is a manufacturer logo shown in the brand strip.
type Brand struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Logo      string             `bson:"logo" json:"logo"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Video is a promotional clip.
type Video struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Src       string             `bson:"src" json:"src"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Contact is the site-wide contact card.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email"`
	Address   string             `bson:"address" json:"address"`
	Phone     string             `bson:"phone" json:"phone"`
	Facebook  string             `bson:"facebook" json:"facebook"`
	Instagram string             `bson:"instagram" json:"instagram"`
	LinkedIn  string             `bson:"linkedin" json:"linkedin"`
	YouTube   string             `bson:"youtube" json:"youtube"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// User is an admin account for the CMS.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
