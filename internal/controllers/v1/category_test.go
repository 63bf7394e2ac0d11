package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/envelope-zero/insights/internal/controllers/v1"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCreateCategory() {
	r := suite.request(http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name:          "  Pets ",
		Icon:          "🐾",
		Subcategories: []string{"Food", "Vet"},
	})
	suite.assertHTTPStatus(r, http.StatusCreated)

	var response v1.CategoryResponse
	suite.decodeResponse(r, &response)

	suite.Assert().Equal("Pets", response.Data.Name)
	suite.Assert().False(response.Data.IsDefault)
	suite.Assert().Len(response.Data.Subcategories, 2)
}

func (suite *TestSuiteStandard) TestCreateCategoryErrors() {
	suite.createTestCategory("Pets")

	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{"name": "Pets"`},
		{"No name", v1.CategoryEditable{Icon: "🐾"}},
		{"Duplicate name", v1.CategoryEditable{Name: "Pets"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "/v1/categories", tt.body)
			suite.assertHTTPStatus(r, http.StatusBadRequest)

			var response v1.CategoryResponse
			suite.decodeResponse(r, &response)
			suite.Assert().NotEmpty(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestGetCategories() {
	family := uuid.New()
	neighbours := uuid.New()

	r := suite.request(http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "Garden", FamilyID: &family})
	suite.assertHTTPStatus(r, http.StatusCreated)

	r = suite.request(http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "Gaming", FamilyID: &neighbours})
	suite.assertHTTPStatus(r, http.StatusCreated)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"Glob on all categories", "name=Ga*", []string{"Gaming", "Garden"}},
		{"Glob within a family", fmt.Sprintf("name=Ga*&family=%s", family), []string{"Garden"}},
		{"Defaults are shared", fmt.Sprintf("name=*o*&family=%s", family), []string{"Groceries", "Housing", "Transport"}},
		{"No match", "name=Zoo*", []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, "/v1/categories?"+tt.query, nil)
			suite.assertHTTPStatus(r, http.StatusOK)

			var response v1.CategoryListResponse
			suite.decodeResponse(r, &response)

			names := []string{}
			for _, c := range response.Data {
				names = append(names, c.Name)
			}
			suite.Assert().Equal(tt.expected, names)
		})
	}

	// Without a filter, all categories are returned
	r = suite.request(http.MethodGet, "/v1/categories", nil)
	suite.assertHTTPStatus(r, http.StatusOK)

	var response v1.CategoryListResponse
	suite.decodeResponse(r, &response)
	suite.Assert().Len(response.Data, 9)
}
