//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"rentacar-api/internal/domain/user"
	"rentacar-api/internal/handler/api"
	resdto "rentacar-api/internal/handler/dto/response"
	"rentacar-api/internal/usecase/commands"
	"rentacar-api/internal/usecase/queries"
	"rentacar-api/tests/common/builder"
	"rentacar-api/tests/common/httptest"
	"rentacar-api/tests/common/testutil"
	commandsmock "rentacar-api/tests/mock/commands"
	queriesmock "rentacar-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CarHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCarCommands
	mockQueries  *queriesmock.MockCarQueries
	handler      *api.CarHandler
	actorID      uuid.UUID
}

func (s *CarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCarCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCarQueries(s.mockCtrl)
	s.handler = api.NewCarHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Stand-in for RequireAuth: a staff actor on every request.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleStaff)
	})

	s.router.GET("/cars", s.handler.ListAvailable)
	s.router.GET("/cars/:id", s.handler.GetCar)
	s.router.POST("/cars", s.handler.CreateCar)
	s.router.PUT("/cars/:id", s.handler.UpdateCar)
	s.router.DELETE("/cars/:id", s.handler.DeleteCar)
}

func (s *CarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CarHandlerTestSuite))
}

func (s *CarHandlerTestSuite) TestListAvailable() {
	returnCar := builder.NewCarBuilder().BuildReadModel()

	s.Run("success: returns cars free in the window", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*queries.CarView{returnCar}, queries.ListDetails{Total: 1, Pages: 1, Page: 1, Limit: 20}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/cars?startDate=2026-10-10&endDate=2026-10-16", nil, "token")

		var response resdto.ListEnvelope[resdto.CarResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Data, 1)
		s.Equal(returnCar.PlateNumber, response.Data[0].PlateNumber)
		s.Equal(int64(1), response.Details.Total)
	})

	s.Run("error: 400 when the window is missing or malformed", func() {
		testCases := []struct {
			name  string
			query string
		}{
			{name: "missing both dates", query: ""},
			{name: "missing endDate", query: "?startDate=2026-10-10"},
			{name: "missing startDate", query: "?endDate=2026-10-16"},
			{name: "malformed date", query: "?startDate=10/10/2026&endDate=2026-10-16"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars"+tc.query, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 when startDate is after endDate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/cars?startDate=2026-10-16&endDate=2026-10-10", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "startDate must not be after endDate")
	})
}

func (s *CarHandlerTestSuite) TestGetCar() {
	returnCar := builder.NewCarBuilder().BuildReadModel()

	s.Run("success: returns the car", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnCar.ID).
			Return(returnCar, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/"+returnCar.ID.String(), nil, "token")

		var response resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnCar.ID, response.ID)
	})

	s.Run("success: an unavailable car is still retrievable by id", func() {
		unavailableCar := builder.NewCarBuilder().AsUnavailable().BuildReadModel()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), unavailableCar.ID).
			Return(unavailableCar, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/"+unavailableCar.ID.String(), nil, "token")

		var response resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsAvailable)
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid car ID format")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrCarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})
}

func (s *CarHandlerTestSuite) TestCreateCar() {
	reqBody := builder.NewCarBuilder().BuildRequestMap()
	returnCar := builder.NewCarBuilder().BuildReadModel()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnCar, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", reqBody, "token")

		var response resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnCar.PlateNumber, response.PlateNumber)
	})

	s.Run("error: 400 on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing plate_number", mutate: testutil.Field("plate_number", nil)},
			{name: "empty brand", mutate: testutil.Field("brand", "")},
			{name: "missing year", mutate: testutil.Field("year", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate plate",
				commandsError:  commands.ErrDuplicatePlateNumber,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Plate number already registered",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid car attributes",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CarHandlerTestSuite) TestUpdateCar() {
	reqBody := builder.NewCarBuilder().BuildRequestMap()
	returnCar := builder.NewCarBuilder().BuildReadModel()

	s.Run("success: returns 202 Accepted with the updated car", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), returnCar.ID, gomock.Any(), gomock.Any()).
			Return(returnCar, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cars/"+returnCar.ID.String(), reqBody, "token")

		var response resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &response)
		s.Equal(returnCar.ID, response.ID)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrCarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cars/"+id.String(), reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})
}

func (s *CarHandlerTestSuite) TestDeleteCar() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cars/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(queries.ErrCarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cars/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})

	s.Run("error: 409 when the car still has reservations", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(commands.ErrCarHasReservations).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cars/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Car has reservations")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cars/123", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid car ID format")
	})
}

func (s *CarHandlerTestSuite) TestListingGrammarPassthrough() {
	s.Run("listing options reach the query layer", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, opts queries.ListOptions) ([]*queries.CarView, queries.ListDetails, error) {
				s.Equal("Toyota", opts.Filters["brand"])
				s.Equal("whi", opts.Searches["color"])
				s.Equal(2, opts.Page)
				s.Equal(5, opts.Limit)
				return nil, queries.NewListDetails(0, opts), nil
			}).Times(1)

		url := fmt.Sprintf("/cars?startDate=2026-10-10&endDate=2026-10-16&%s",
			"filter[brand]=Toyota&search[color]=whi&sort[year]=-1&page=2&limit=5")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})
}
