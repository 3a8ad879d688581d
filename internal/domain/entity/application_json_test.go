package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplication_UnmarshalScalars(t *testing.T) {
	var app Application
	err := json.Unmarshal([]byte(`{
		"firstName": "Salma",
		"studentId": 20251234,
		"gpa": 3.50,
		"year": 4,
		"phone": null,
		"skills": true,
		"careerGoals": false
	}`), &app)
	require.NoError(t, err)

	assert.Equal(t, "Salma", app.FirstName)
	assert.Equal(t, "20251234", app.StudentID)
	assert.Equal(t, "3.50", app.GPA)
	assert.Equal(t, "4", app.Year)
	assert.Empty(t, app.Phone)
	assert.Equal(t, "true", app.Skills)
	assert.Empty(t, app.CareerGoals)
}

func TestApplication_UnmarshalRejectsNested(t *testing.T) {
	for name, body := range map[string]string{
		"array":  `{"gpa": [3.5]}`,
		"object": `{"program": {"slug": "coop"}}`,
		"scalar": `"coop"`,
	} {
		t.Run(name, func(t *testing.T) {
			var app Application
			err := json.Unmarshal([]byte(body), &app)
			var ute *json.UnmarshalTypeError
			assert.ErrorAs(t, err, &ute)
		})
	}
}

func TestApplication_UnknownFieldsIgnored(t *testing.T) {
	var app Application
	require.NoError(t, json.Unmarshal([]byte(`{"program":"coop","extra":1}`), &app))
	assert.Equal(t, "coop", app.Program)
}
