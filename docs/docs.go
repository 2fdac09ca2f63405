// Package docs holds the swagger document served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/wanderly/travel-search-api/issues"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/destinations/inspiration": {
            "get": {
                "produces": ["application/json"],
                "tags": ["destinations"],
                "summary": "Suggest destinations",
                "description": "Suggest destination deals from an origin airport",
                "parameters": [
                    {
                        "type": "string",
                        "name": "origin",
                        "in": "query",
                        "description": "Origin IATA code",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.InspirationResult"}
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {"$ref": "#/definitions/response.ErrorDetail"}
                    }
                }
            }
        },
        "/flights/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Search for flights",
                "description": "Search flight offers for a route and date, served live, from cache, or degraded",
                "parameters": [
                    {"type": "string", "name": "origin", "in": "query", "description": "Origin IATA code", "required": true},
                    {"type": "string", "name": "destination", "in": "query", "description": "Destination IATA code", "required": true},
                    {"type": "string", "name": "departureDate", "in": "query", "description": "Departure date (YYYY-MM-DD)", "required": true},
                    {"type": "string", "name": "returnDate", "in": "query", "description": "Return date (YYYY-MM-DD)"},
                    {"type": "integer", "name": "adults", "in": "query", "description": "Number of adults (1-9)"},
                    {"type": "string", "name": "cabinClass", "in": "query", "description": "Cabin class", "enum": ["ECONOMY", "PREMIUM_ECONOMY", "BUSINESS", "FIRST"]}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.FlightSearchResult"}
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {"$ref": "#/definitions/response.ErrorDetail"}
                    }
                }
            }
        },
        "/hotels/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hotels"],
                "summary": "Search for hotels",
                "description": "Search hotel offers for a city and stay window, served live, from cache, or degraded",
                "parameters": [
                    {"type": "string", "name": "cityCode", "in": "query", "description": "City IATA code", "required": true},
                    {"type": "string", "name": "checkInDate", "in": "query", "description": "Check-in date (YYYY-MM-DD)", "required": true},
                    {"type": "string", "name": "checkOutDate", "in": "query", "description": "Check-out date (YYYY-MM-DD)", "required": true},
                    {"type": "integer", "name": "adults", "in": "query", "description": "Number of adults (1-9)"},
                    {"type": "integer", "name": "rooms", "in": "query", "description": "Number of rooms (1-9)"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.HotelSearchResult"}
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {"$ref": "#/definitions/response.ErrorDetail"}
                    }
                }
            }
        },
        "/locations/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Search for airports and cities",
                "description": "Autocomplete lookup for airports and cities, falling back to bundled reference data",
                "parameters": [
                    {"type": "string", "name": "keyword", "in": "query", "description": "Search keyword (min 2 characters)", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.LocationSearchResult"}
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {"$ref": "#/definitions/response.ErrorDetail"}
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.DurationInfo": {
            "type": "object",
            "properties": {
                "totalMinutes": {"type": "integer"},
                "formatted": {"type": "string"}
            }
        },
        "domain.Flight": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "origin": {"type": "string"},
                "destination": {"type": "string"},
                "originCity": {"type": "string"},
                "destinationCity": {"type": "string"},
                "departureTime": {"type": "string"},
                "arrivalTime": {"type": "string"},
                "duration": {"$ref": "#/definitions/domain.DurationInfo"},
                "stops": {"type": "integer"},
                "carrierCode": {"type": "string"},
                "price": {"$ref": "#/definitions/domain.PriceInfo"},
                "cabinClass": {"type": "string"},
                "source": {"type": "string"},
                "fetchedAt": {"type": "string"}
            }
        },
        "domain.FlightSearchResult": {
            "type": "object",
            "properties": {
                "flights": {"type": "array", "items": {"$ref": "#/definitions/domain.Flight"}},
                "source": {"type": "string", "enum": ["live", "cached", "fallback", "error"]},
                "count": {"type": "integer"},
                "warning": {"type": "string"}
            }
        },
        "domain.Hotel": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "cityCode": {"type": "string"},
                "cityName": {"type": "string"},
                "address": {"type": "string"},
                "rating": {"type": "integer"},
                "pricePerNight": {"type": "number"},
                "totalPrice": {"type": "number"},
                "currency": {"type": "string"},
                "roomDescription": {"type": "string"},
                "amenities": {"type": "array", "items": {"type": "string"}},
                "cancellationPolicy": {"type": "string"},
                "source": {"type": "string"},
                "fetchedAt": {"type": "string"}
            }
        },
        "domain.HotelSearchResult": {
            "type": "object",
            "properties": {
                "hotels": {"type": "array", "items": {"$ref": "#/definitions/domain.Hotel"}},
                "source": {"type": "string", "enum": ["live", "cached", "fallback", "error"]},
                "count": {"type": "integer"},
                "warning": {"type": "string"}
            }
        },
        "domain.Inspiration": {
            "type": "object",
            "properties": {
                "destination": {"type": "string"},
                "cityName": {"type": "string"},
                "departureDate": {"type": "string"},
                "returnDate": {"type": "string"},
                "price": {"type": "number"},
                "currency": {"type": "string"},
                "source": {"type": "string"}
            }
        },
        "domain.InspirationResult": {
            "type": "object",
            "properties": {
                "destinations": {"type": "array", "items": {"$ref": "#/definitions/domain.Inspiration"}},
                "source": {"type": "string", "enum": ["live", "cached", "fallback", "error"]},
                "message": {"type": "string"}
            }
        },
        "domain.Location": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "cityName": {"type": "string"},
                "countryName": {"type": "string"},
                "type": {"type": "string", "enum": ["AIRPORT", "CITY"]}
            }
        },
        "domain.LocationSearchResult": {
            "type": "object",
            "properties": {
                "locations": {"type": "array", "items": {"$ref": "#/definitions/domain.Location"}},
                "source": {"type": "string", "enum": ["live", "cached", "fallback", "error"]}
            }
        },
        "domain.PriceInfo": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "currency": {"type": "string"}
            }
        },
        "response.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Travel Search API",
	Description:      "A travel data acquisition service that serves flight, hotel, location, and destination searches live, from cache, or from bundled fallback data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
