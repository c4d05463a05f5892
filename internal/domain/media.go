package domain

// MediaKind tells the media store which bucket and probing a blob needs.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

func (k MediaKind) String() string { return string(k) }

// MediaBlob is an uploaded file staged on local disk.
type MediaBlob struct {
	Kind        MediaKind
	LocalPath   string
	Filename    string
	ContentType string
}

// StoredMedia is the result of storing a blob. Duration is set for videos.
type StoredMedia struct {
	URL      string
	Duration *float64
}
