package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	helper "github.com/bagas-w/gridway/pkg/http/router/routerhelper"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type pathAPI struct {
	pathfinderService PathfinderService
	log               *zap.Logger
}

func New(pathfinderService PathfinderService, log *zap.Logger) *pathAPI {
	return &pathAPI{
		pathfinderService: pathfinderService,
		log:               log,
	}
}

func (api *pathAPI) Routes(group *helper.RouteGroup) {
	group.GET("/search", api.search)
	group.GET("/race", api.race)
	group.GET("/grid", api.gridSnapshot)
	group.POST("/grid/wall", api.toggleWall)
	group.POST("/grid/weight", api.assignWeight)
}

func (api *pathAPI) search(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request searchRequest
		err     error
	)

	query := r.URL.Query()

	request.Algorithm = query.Get("algorithm")
	request.StartRow, err = strconv.Atoi(query.Get("start_row"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_row is required and must be a valid integer"))
		return
	}
	request.StartCol, err = strconv.Atoi(query.Get("start_col"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_col is required and must be a valid integer"))
		return
	}
	request.EndRow, err = strconv.Atoi(query.Get("end_row"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("end_row is required and must be a valid integer"))
		return
	}
	request.EndCol, err = strconv.Atoi(query.Get("end_col"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("end_col is required and must be a valid integer"))
		return
	}

	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	summary, err := api.pathfinderService.Search(request.Algorithm,
		request.StartRow, request.StartCol, request.EndRow, request.EndCol)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": summary}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *pathAPI) race(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request raceRequest
		err     error
	)

	query := r.URL.Query()

	request.StartRow, err = strconv.Atoi(query.Get("start_row"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_row is required and must be a valid integer"))
		return
	}
	request.StartCol, err = strconv.Atoi(query.Get("start_col"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_col is required and must be a valid integer"))
		return
	}
	request.EndRow, err = strconv.Atoi(query.Get("end_row"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("end_row is required and must be a valid integer"))
		return
	}
	request.EndCol, err = strconv.Atoi(query.Get("end_col"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("end_col is required and must be a valid integer"))
		return
	}

	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	bfsSummary, astarSummary, err := api.pathfinderService.Race(
		request.StartRow, request.StartCol, request.EndRow, request.EndCol)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewRaceResponse(bfsSummary, astarSummary)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *pathAPI) gridSnapshot(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	snapshot := api.pathfinderService.Snapshot()
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": snapshot}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *pathAPI) toggleWall(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request wallRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.pathfinderService.ToggleWall(request.Row, request.Col, *request.IsWall); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": "ok"}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *pathAPI) assignWeight(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request weightRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.pathfinderService.AssignWeight(request.Row, request.Col, request.Weight); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": "ok"}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *pathAPI) validateRequest(request interface{}) error {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return fmt.Errorf("validation error: %v", vvString)
	}
	return nil
}
