//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"rentacar-api/internal/domain/user"
	"rentacar-api/internal/handler/api"
	resdto "rentacar-api/internal/handler/dto/response"
	"rentacar-api/internal/usecase/commands"
	"rentacar-api/internal/usecase/queries"
	"rentacar-api/internal/usecase/shared"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	actorID      uuid.UUID
	actorRole    user.Role
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()
	s.actorRole = user.RoleMember

	// Stand-in for RequireAuth, the role can be switched per test.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
	})

	s.router.GET("/reservations", s.handler.ListReservations)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.PUT("/reservations/:id", s.handler.UpdateReservation)
	s.router.DELETE("/reservations/:id", s.handler.DeleteReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) actor() shared.Actor {
	return shared.Actor{ID: s.actorID, Role: s.actorRole}
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	returnView := builder.NewReservationBuilder().BuildReadModel()

	s.Run("success: passes the actor through for scoping", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor(), gomock.Any()).
			Return([]*queries.ReservationView{returnView}, queries.ListDetails{Total: 1, Pages: 1, Page: 1, Limit: 20}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "token")

		var response resdto.ListEnvelope[resdto.ReservationResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Data, 1)
		s.Equal(returnView.ID, response.Data[0].ID)
	})

	s.Run("success: empty result still returns a data array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor(), gomock.Any()).
			Return(nil, queries.ListDetails{Total: 0, Pages: 1, Page: 1, Limit: 20}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"data":[]`)
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	returnView := builder.NewReservationBuilder().BuildReadModel()

	s.Run("success: returns the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+returnView.ID.String(), nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("2026-10-10", response.StartDate)
	})

	s.Run("error: 404 when out of scope or missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), id).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	reqBody := builder.NewReservationBuilder().BuildRequestMap()
	returnView := builder.NewReservationBuilder().BuildReadModel()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.actor()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 when dates are missing or malformed", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing start_date", mutate: testutil.Field("start_date", nil)},
			{name: "missing end_date", mutate: testutil.Field("end_date", nil)},
			{name: "empty start_date", mutate: testutil.Field("start_date", "")},
			{name: "time instead of date", mutate: testutil.Field("start_date", "2026-10-10T00:00:00Z")},
			{name: "missing car_id", mutate: testutil.Field("car_id", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 with the conflicting reservation as detail", func() {
		conflicting := builder.NewReservationBuilder().BuildReadModel()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.actor()).
			Return(nil, &commands.ConflictError{Conflicting: conflicting}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "token")
		s.Equal(http.StatusConflict, rec.Code)

		var response struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail resdto.ReservationResponse `json:"detail"`
		}
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Contains(response.Error.Message, "overlapping reservation")
		s.Equal(conflicting.ID, response.Detail.ID)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "inverted period",
				commandsError:  commands.ErrInvalidPeriod,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "start_date must not be after end_date",
			},
			{
				name:           "unknown car",
				commandsError:  queries.ErrCarNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Car not found",
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
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.actor()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateReservation() {
	reqBody := builder.NewReservationBuilder().BuildRequestMap()
	returnView := builder.NewReservationBuilder().BuildReadModel()

	s.Run("success: returns 202 Accepted with the updated record", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), returnView.ID).
			Return(returnView, nil).Times(1)
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any(), s.actor()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/"+returnView.ID.String(), reqBody, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 404 before the body is even parsed when out of scope", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), id).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/"+id.String(), reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 when dates are missing or malformed", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing start_date", mutate: testutil.Field("start_date", nil)},
			{name: "missing end_date", mutate: testutil.Field("end_date", nil)},
			{name: "empty end_date", mutate: testutil.Field("end_date", "")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), returnView.ID).
					Return(returnView, nil).Times(1)

				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/"+returnView.ID.String(), requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestDeleteReservation() {
	s.Run("success: returns 204 No Content", func() {
		view := builder.NewReservationBuilder().BuildReadModel()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), view.ID).
			Return(view, nil).Times(1)
		s.mockCommands.EXPECT().Delete(gomock.Any(), view.ID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+view.ID.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when out of scope or missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), id).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
