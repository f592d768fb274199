package service

import (
	"context"
	"fmt"
	"time"

	"app/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// documentContentTypes is the allow-list for patient document uploads.
var documentContentTypes = map[string]string{
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"txt":  "text/plain",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xps":  "application/oxps",
	"mobi": "application/x-mobipocket-ebook",
	"cbz":  "application/vnd.comicbook+zip",
}

// genericFileTypes additionally admits image formats for the info and
// answer-key folders.
var genericFileTypes = map[string]struct{}{
	"pdf": {}, "docx": {}, "pptx": {}, "txt": {}, "xlsx": {}, "xps": {}, "mobi": {}, "cbz": {},
	"bmp": {}, "eps": {}, "gif": {}, "icns": {}, "ico": {}, "im": {}, "jpeg": {}, "jpg": {},
	"j2k": {}, "jp2": {}, "msp": {}, "pcx": {}, "png": {}, "ppm": {}, "pgm": {}, "pbm": {},
	"sgi": {}, "tga": {}, "tiff": {}, "tif": {}, "webp": {}, "xbm": {},
}

// StorageService owns patient file placement in the bucket. Keys follow
// <simulation_group_id>/<patient_id>/<folder>/<file_name>.<file_type>.
type StorageService interface {
	// PresignedUploadURL issues a short-lived PUT URL for a patient
	// document upload.
	PresignedUploadURL(ctx context.Context, simulationGroupID, patientID, fileName, fileType string) (string, error)
	// DeletePatientFile removes the object and its database record.
	DeletePatientFile(ctx context.Context, simulationGroupID, patientID, fileName, fileType, folderType string) error
}

type storageService struct {
	s3Client      *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
	patients      repository.PatientRepository
	storageLogger zerolog.Logger
}

func NewStorageService(s3Client *s3.Client, bucketName string, patients repository.PatientRepository, logger zerolog.Logger) StorageService {
	return &storageService{
		s3Client:      s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    bucketName,
		patients:      patients,
		storageLogger: logger.With().Str("service", "StorageService").Logger(),
	}
}

func (s *storageService) PresignedUploadURL(ctx context.Context, simulationGroupID, patientID, fileName, fileType string) (string, error) {
	contentType, ok := documentContentTypes[fileType]
	if !ok {
		return "", ErrUnsupportedFileType
	}
	key := fmt.Sprintf("%s/%s/documents/%s.%s", simulationGroupID, patientID, fileName, fileType)

	request, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		s.storageLogger.Error().Err(err).Str("object_key", key).Msg("Failed to generate presigned PUT URL")
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return request.URL, nil
}

func (s *storageService) DeletePatientFile(ctx context.Context, simulationGroupID, patientID, fileName, fileType, folderType string) error {
	var key string
	switch {
	case folderType == "documents" && hasDocumentType(fileType):
		key = fmt.Sprintf("%s/%s/documents/%s.%s", simulationGroupID, patientID, fileName, fileType)
	case folderType == "info" && hasGenericType(fileType):
		key = fmt.Sprintf("%s/%s/info/%s.%s", simulationGroupID, patientID, fileName, fileType)
	case folderType == "answer_key" && hasGenericType(fileType):
		key = fmt.Sprintf("%s/%s/answer_key/%s.%s", simulationGroupID, patientID, fileName, fileType)
	default:
		return ErrUnsupportedFileType
	}

	_, err := s.s3Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucketName),
		Delete: &types.Delete{
			Objects: []types.ObjectIdentifier{{Key: aws.String(key)}},
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		s.storageLogger.Error().Err(err).Str("object_key", key).Msg("Failed to delete object")
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return s.patients.DeletePatientFile(ctx, patientID, fileName, fileType)
}

func hasDocumentType(fileType string) bool {
	_, ok := documentContentTypes[fileType]
	return ok
}

func hasGenericType(fileType string) bool {
	_, ok := genericFileTypes[fileType]
	return ok
}
