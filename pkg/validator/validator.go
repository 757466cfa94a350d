package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			message := getFieldErrorMessage(fieldError)
			messages = append(messages, message)
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

// DecodeStrict decodes a JSON body rejecting unknown fields, then runs the
// struct validation used by gin's binding layer. Update payloads go through
// this so arbitrary keys never reach a persistence write.
func DecodeStrict(r io.Reader, dest any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return err
	}
	if binding.Validator == nil {
		return nil
	}
	return binding.Validator.ValidateStruct(dest)
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s wajib diisi", field)
	case "email":
		return fmt.Sprintf("%s harus berupa email yang valid", field)
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s minimal %s karakter", field, fe.Param())
		}
		return fmt.Sprintf("%s minimal %s", field, fe.Param())
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s maksimal %s karakter", field, fe.Param())
		}
		return fmt.Sprintf("%s maksimal %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s harus salah satu dari: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s tidak valid", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Email":          "Email",
		"Password":       "Password",
		"Name":           "Nama",
		"Description":    "Deskripsi",
		"Permissions":    "Permissions",
		"UserID":         "User",
		"NISN":           "NISN",
		"NIK":            "NIK",
		"EmployeeID":     "NIP",
		"BirthPlace":     "Tempat lahir",
		"BirthDate":      "Tanggal lahir",
		"Address":        "Alamat",
		"Gender":         "Jenis kelamin",
		"ClassID":        "Kelas",
		"MajorID":        "Jurusan",
		"AcademicYearID": "Tahun ajaran",
		"EnrollmentDate": "Tanggal masuk",
		"ParentPhone":    "Telepon orang tua",
		"Code":           "Kode",
		"Year":           "Tahun",
		"StartDate":      "Tanggal mulai",
		"EndDate":        "Tanggal selesai",
		"DayOfWeek":      "Hari",
		"StartTime":      "Jam mulai",
		"EndTime":        "Jam selesai",
		"SubjectID":      "Mata pelajaran",
		"TeacherID":      "Guru",
		"StudentID":      "Siswa",
		"Points":         "Poin",
		"Category":       "Kategori",
		"Date":           "Tanggal",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
