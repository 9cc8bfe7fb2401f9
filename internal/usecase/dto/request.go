package dto

// CreateSiteRequest carries the writable fields of a site. Coordinates
// are only checked for presence here; the bounds invariant is a domain
// rule enforced by the use case.
type CreateSiteRequest struct {
	Name             string   `json:"name" form:"name" validate:"required,max=45"`
	Description      *string  `json:"description" form:"description"`
	Lat              *float64 `json:"lat" form:"lat" validate:"required"`
	Lon              *float64 `json:"lon" form:"lon" validate:"required"`
	City             *string  `json:"city" form:"city" validate:"omitempty,max=200"`
	SiteCreationDate *string  `json:"site_creation_date" form:"site_creation_date" validate:"omitempty,datetime=2006-01-02"`
	SiteTypeID       *int64   `json:"site_type_id" form:"site_type_id"`
}

// Values maps the request onto the site column set for the generic
// repository.
func (r *CreateSiteRequest) Values() map[string]interface{} {
	return map[string]interface{}{
		"name":               r.Name,
		"description":        r.Description,
		"lat":                *r.Lat,
		"lon":                *r.Lon,
		"city":               r.City,
		"site_creation_date": r.SiteCreationDate,
		"site_type_id":       r.SiteTypeID,
	}
}

// UpdateSiteRequest is the partial-update variant: absent fields keep
// their stored values.
type UpdateSiteRequest struct {
	Name             *string  `json:"name" form:"name" validate:"omitempty,max=45"`
	Description      *string  `json:"description" form:"description"`
	Lat              *float64 `json:"lat" form:"lat"`
	Lon              *float64 `json:"lon" form:"lon"`
	City             *string  `json:"city" form:"city" validate:"omitempty,max=200"`
	SiteCreationDate *string  `json:"site_creation_date" form:"site_creation_date" validate:"omitempty,datetime=2006-01-02"`
	SiteTypeID       *int64   `json:"site_type_id" form:"site_type_id"`
}

func (r *UpdateSiteRequest) Values() map[string]interface{} {
	values := map[string]interface{}{}
	if r.Name != nil {
		values["name"] = *r.Name
	}
	if r.Description != nil {
		values["description"] = r.Description
	}
	if r.Lat != nil {
		values["lat"] = *r.Lat
	}
	if r.Lon != nil {
		values["lon"] = *r.Lon
	}
	if r.City != nil {
		values["city"] = r.City
	}
	if r.SiteCreationDate != nil {
		values["site_creation_date"] = r.SiteCreationDate
	}
	if r.SiteTypeID != nil {
		values["site_type_id"] = r.SiteTypeID
	}
	return values
}

// NearbySitesRequest parameterizes the geo search. The radius is in
// kilometers; its bounds are a domain rule checked by the use case,
// which also applies the default when the field is absent.
type NearbySitesRequest struct {
	Lat    *float64 `query:"lat" validate:"required"`
	Lon    *float64 `query:"lon" validate:"required"`
	Radius *float64 `query:"radius"`
}

type CreateSiteTypeRequest struct {
	Code  string `json:"code" form:"code" validate:"required,max=45"`
	Label string `json:"label" form:"label" validate:"required,max=45"`
}

func (r *CreateSiteTypeRequest) Values() map[string]interface{} {
	return map[string]interface{}{
		"code":  r.Code,
		"label": r.Label,
	}
}

type UpdateSiteTypeRequest struct {
	Code  *string `json:"code" form:"code" validate:"omitempty,max=45"`
	Label *string `json:"label" form:"label" validate:"omitempty,max=45"`
}

func (r *UpdateSiteTypeRequest) Values() map[string]interface{} {
	values := map[string]interface{}{}
	if r.Code != nil {
		values["code"] = *r.Code
	}
	if r.Label != nil {
		values["label"] = *r.Label
	}
	return values
}
