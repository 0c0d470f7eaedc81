package dto

type AddFileRequest struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
	UploadedBy string `json:"uploadedBy"`
}
