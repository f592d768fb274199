package dto

// ModuleEditDTO is the body of the edit-module request.
type ModuleEditDTO struct {
	ModuleName string `json:"module_name" validate:"required"`
}

// MetadataUpdateDTO is the body of the file-metadata upsert.
type MetadataUpdateDTO struct {
	Metadata string `json:"metadata" validate:"required"`
}
