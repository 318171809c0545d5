package common

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"obeserver/importer"
	apperrors "obeserver/server/errors"
	"obeserver/tabular"
)

// maxUploadSize bounds a single spreadsheet upload.
const maxUploadSize = 50 << 20 // 50MB

// ReadUploadedSheet pulls the named multipart file from the request and
// parses its first worksheet. Returns the sheet and the original file name.
func ReadUploadedSheet(c *gin.Context, field string) (*tabular.Sheet, string, error) {
	header, err := formFile(c, field)
	if err != nil {
		return nil, "", err
	}

	f, err := header.Open()
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to open uploaded file", err)
	}
	defer f.Close()

	sheet, err := importer.ReadWorkbookFrom(f)
	if err != nil {
		return nil, "", err
	}

	return sheet, header.Filename, nil
}

// ReadUploadedMatrix is like ReadUploadedSheet but detects the header row
// inside the sheet instead of assuming it is first. Used for prediction
// workbooks, which often carry title rows above the data.
func ReadUploadedMatrix(c *gin.Context, field string) (*tabular.Sheet, string, error) {
	header, err := formFile(c, field)
	if err != nil {
		return nil, "", err
	}

	f, err := header.Open()
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to open uploaded file", err)
	}
	defer f.Close()

	sheet, err := importer.ReadPredictionSheet(f)
	if err != nil {
		return nil, "", err
	}

	return sheet, header.Filename, nil
}

func formFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, apperrors.NewValidationError("Please upload a file", err)
	}

	if header.Size > maxUploadSize {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("file too large: %d bytes, limit is %d", header.Size, maxUploadSize), nil)
	}

	name := strings.ToLower(header.Filename)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xlsm") && !strings.HasSuffix(name, ".xls") {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("unsupported file type: %s, expected an Excel workbook", header.Filename), nil)
	}

	return header, nil
}
