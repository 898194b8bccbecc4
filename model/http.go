package model

type ProcessResponse struct {
	ID          string   `json:"id"`
	ZipName     string   `json:"zip_name"`
	FileNames   []string `json:"file_names"`
	DownloadURL string   `json:"download_url"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
