// Package docs holds the Swagger document served under /swagger.
// Regenerate with: swag init -g cmd/app/main.go -o internal/adapters/in/http/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"consumes": [
		"application/json"
	],
	"produces": [
		"application/json"
	],
	"paths": {
		"/orders": {
			"post": {
				"summary": "Place an order",
				"tags": [
					"orders"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/queries.OrderView"
						}
					},
					"200": {
						"description": "replayed request",
						"schema": {
							"$ref": "#/definitions/queries.OrderView"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "replay protection key",
						"name": "Idempotency-Key",
						"in": "header"
					},
					{
						"in": "body",
						"name": "order",
						"description": "cart lines, address, payment",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.CreateOrderRequest"
						}
					}
				]
			},
			"get": {
				"summary": "List orders",
				"tags": [
					"orders"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/queries.OrderView"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "owner filter, admins only",
						"name": "userId",
						"in": "query"
					}
				]
			}
		},
		"/orders/return": {
			"post": {
				"summary": "Request a return",
				"tags": [
					"returns"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/queries.OrderView"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"description": "order and reason",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.ReturnRequest"
						}
					}
				]
			}
		},
		"/admin/orders/assign": {
			"patch": {
				"summary": "Assign or unassign a deliveryman",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.MessageResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"description": "order and deliveryman",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.AssignRequest"
						}
					}
				]
			}
		},
		"/admin/delivery-men/eligible": {
			"get": {
				"summary": "List deliverymen who can take an order in an area",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/queries.EligibleDeliveryManView"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "order city",
						"name": "area",
						"in": "query",
						"required": true
					}
				]
			}
		},
		"/admin/delivery-men": {
			"post": {
				"summary": "Create a delivery profile for an existing user",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/http.DeliveryManResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"description": "user and area",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.OnboardDeliveryManRequest"
						}
					}
				]
			}
		},
		"/delivery": {
			"put": {
				"summary": "Advance an assigned order",
				"tags": [
					"delivery"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/queries.OrderView"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"description": "order and next status",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.DeliveryStatusRequest"
						}
					}
				]
			}
		},
		"/delivery/orders": {
			"get": {
				"summary": "Orders held by the calling deliveryman",
				"tags": [
					"delivery"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/queries.OrderView"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "boolean",
						"description": "also list delivered orders",
						"name": "includeDelivered",
						"in": "query"
					}
				]
			}
		},
		"/delivery/profile": {
			"get": {
				"summary": "Earnings and delivery history of the caller",
				"tags": [
					"delivery"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/queries.DeliveryManProfileView"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/delivery/availability": {
			"patch": {
				"summary": "Switch the caller on or off for new assignments",
				"tags": [
					"delivery"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.DeliveryManResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"description": "availability",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.AvailabilityRequest"
						}
					}
				]
			}
		},
		"/delivery/return-orders": {
			"patch": {
				"summary": "Approve, reject or complete a return",
				"tags": [
					"returns"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/queries.OrderView"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"description": "order, next return status, pickup date",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.ProcessReturnRequest"
						}
					}
				]
			}
		},
		"/coupons": {
			"post": {
				"summary": "Create a coupon",
				"tags": [
					"coupons"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/queries.CouponView"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "coupon",
						"description": "coupon attributes",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.CouponRequest"
						}
					}
				]
			},
			"get": {
				"summary": "List coupons",
				"tags": [
					"coupons"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/queries.CouponView"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "boolean",
						"description": "hide inactive coupons",
						"name": "activeOnly",
						"in": "query"
					}
				]
			}
		},
		"/coupons/validate": {
			"get": {
				"summary": "Preview a coupon discount",
				"tags": [
					"coupons"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/queries.CouponPreview"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "coupon code",
						"name": "code",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "candidate order total",
						"name": "total",
						"in": "query",
						"required": true
					}
				]
			}
		},
		"/coupons/{id}": {
			"put": {
				"summary": "Replace a coupon's attributes",
				"tags": [
					"coupons"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/queries.CouponView"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "coupon id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "coupon",
						"description": "coupon attributes",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.CouponRequest"
						}
					}
				]
			},
			"delete": {
				"summary": "Delete a coupon",
				"tags": [
					"coupons"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "coupon id",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/seller/analytics": {
			"get": {
				"summary": "Sales figures of a seller",
				"tags": [
					"seller"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/queries.SellerAnalytics"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "seller to report on, admins only",
						"name": "sellerId",
						"in": "query"
					}
				]
			}
		}
	},
	"definitions": {
		"http.Error": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				}
			},
			"required": [
				"code",
				"message"
			]
		},
		"http.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			},
			"required": [
				"message"
			]
		},
		"http.OrderLineRequest": {
			"type": "object",
			"properties": {
				"product": {
					"type": "string",
					"format": "uuid"
				},
				"quantity": {
					"type": "integer",
					"minimum": 1
				},
				"size": {
					"type": "string"
				},
				"color": {
					"type": "string"
				}
			},
			"required": [
				"product",
				"quantity"
			]
		},
		"http.AddressRequest": {
			"type": "object",
			"properties": {
				"fullName": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"postalCode": {
					"type": "string"
				},
				"country": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				}
			},
			"required": [
				"fullName",
				"address",
				"city",
				"postalCode",
				"country",
				"phone"
			]
		},
		"http.CreateOrderRequest": {
			"type": "object",
			"properties": {
				"orderItems": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.OrderLineRequest"
					}
				},
				"shippingAddress": {
					"$ref": "#/definitions/http.AddressRequest"
				},
				"paymentMethod": {
					"type": "string",
					"enum": [
						"cash_on_delivery",
						"card",
						"cod"
					]
				},
				"couponCode": {
					"type": "string"
				},
				"idempotencyKey": {
					"type": "string"
				}
			},
			"required": [
				"orderItems",
				"shippingAddress",
				"paymentMethod"
			]
		},
		"http.AssignRequest": {
			"type": "object",
			"properties": {
				"orderId": {
					"type": "string",
					"format": "uuid"
				},
				"deliveryManId": {
					"type": "string",
					"format": "uuid"
				},
				"deliveryManEmail": {
					"type": "string"
				},
				"newStatus": {
					"type": "string",
					"enum": [
						"assigned",
						"unassigned"
					]
				}
			},
			"required": [
				"orderId"
			]
		},
		"http.OnboardDeliveryManRequest": {
			"type": "object",
			"properties": {
				"userId": {
					"type": "string",
					"format": "uuid"
				},
				"area": {
					"type": "string"
				}
			},
			"required": [
				"userId",
				"area"
			]
		},
		"http.DeliveryStatusRequest": {
			"type": "object",
			"properties": {
				"orderId": {
					"type": "string",
					"format": "uuid"
				},
				"status": {
					"type": "string",
					"enum": [
						"processing",
						"out_for_delivery",
						"delivered"
					]
				}
			},
			"required": [
				"orderId",
				"status"
			]
		},
		"http.AvailabilityRequest": {
			"type": "object",
			"properties": {
				"availableForDelivery": {
					"type": "boolean"
				}
			},
			"required": [
				"availableForDelivery"
			]
		},
		"http.ReturnRequest": {
			"type": "object",
			"properties": {
				"orderId": {
					"type": "string",
					"format": "uuid"
				},
				"reason": {
					"type": "string"
				}
			},
			"required": [
				"orderId",
				"reason"
			]
		},
		"http.ProcessReturnRequest": {
			"type": "object",
			"properties": {
				"orderId": {
					"type": "string",
					"format": "uuid"
				},
				"status": {
					"type": "string",
					"enum": [
						"approved",
						"rejected",
						"completed"
					]
				},
				"scheduledDate": {
					"type": "string",
					"format": "date-time"
				}
			},
			"required": [
				"orderId",
				"status"
			]
		},
		"http.CouponRequest": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"discountType": {
					"type": "string",
					"enum": [
						"percentage",
						"fixed"
					]
				},
				"discountAmount": {
					"type": "string",
					"example": "10.00"
				},
				"minimumPurchase": {
					"type": "string",
					"example": "10.00"
				},
				"startDate": {
					"type": "string",
					"format": "date-time"
				},
				"endDate": {
					"type": "string",
					"format": "date-time"
				},
				"usageLimit": {
					"type": "integer"
				},
				"isActive": {
					"type": "boolean"
				}
			},
			"required": [
				"code",
				"discountType",
				"discountAmount",
				"startDate",
				"endDate"
			]
		},
		"http.DeliveryManResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"area": {
					"type": "string"
				},
				"availableForDelivery": {
					"type": "boolean"
				},
				"earnings": {
					"type": "string",
					"example": "10.00"
				},
				"assignedOrders": {
					"type": "array",
					"items": {
						"type": "string",
						"format": "uuid"
					}
				}
			}
		},
		"queries.AddressView": {
			"type": "object",
			"properties": {
				"fullName": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"postalCode": {
					"type": "string"
				},
				"country": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				}
			}
		},
		"queries.OrderItemView": {
			"type": "object",
			"properties": {
				"product": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"price": {
					"type": "string",
					"example": "10.00"
				},
				"size": {
					"type": "string"
				},
				"color": {
					"type": "string"
				},
				"sellerId": {
					"type": "string",
					"format": "uuid"
				},
				"image": {
					"type": "string"
				}
			},
			"required": [
				"product",
				"name",
				"quantity",
				"price",
				"sellerId"
			]
		},
		"queries.OrderView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"userId": {
					"type": "string",
					"format": "uuid"
				},
				"orderItems": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/queries.OrderItemView"
					}
				},
				"shippingAddress": {
					"$ref": "#/definitions/queries.AddressView"
				},
				"paymentMethod": {
					"type": "string"
				},
				"itemsPrice": {
					"type": "string",
					"example": "10.00"
				},
				"couponCode": {
					"type": "string"
				},
				"couponDiscount": {
					"type": "string",
					"example": "10.00"
				},
				"taxPrice": {
					"type": "string",
					"example": "10.00"
				},
				"shippingPrice": {
					"type": "string",
					"example": "10.00"
				},
				"totalPrice": {
					"type": "string",
					"example": "10.00"
				},
				"isPaid": {
					"type": "boolean"
				},
				"paidAt": {
					"type": "string",
					"format": "date-time"
				},
				"isDelivered": {
					"type": "boolean"
				},
				"deliveredAt": {
					"type": "string",
					"format": "date-time"
				},
				"deliveryStatus": {
					"type": "string",
					"enum": [
						"unassigned",
						"assigned",
						"processing",
						"out_for_delivery",
						"delivered"
					]
				},
				"deliveryMan": {
					"type": "string",
					"format": "uuid"
				},
				"deliveryEarnings": {
					"type": "string",
					"example": "10.00"
				},
				"returnStatus": {
					"type": "string",
					"enum": [
						"none",
						"pending",
						"approved",
						"rejected",
						"completed"
					]
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			},
			"required": [
				"id",
				"userId",
				"orderItems",
				"shippingAddress",
				"paymentMethod",
				"itemsPrice",
				"couponDiscount",
				"taxPrice",
				"shippingPrice",
				"totalPrice",
				"isPaid",
				"isDelivered",
				"deliveryStatus",
				"returnStatus",
				"createdAt"
			]
		},
		"queries.EligibleDeliveryManView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"area": {
					"type": "string"
				},
				"assignedOrders": {
					"type": "integer"
				}
			}
		},
		"queries.DeliveryRecordView": {
			"type": "object",
			"properties": {
				"orderId": {
					"type": "string",
					"format": "uuid"
				},
				"earnedAmount": {
					"type": "string",
					"example": "10.00"
				},
				"deliveryDate": {
					"type": "string",
					"format": "date-time"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"queries.DeliveryManProfileView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"area": {
					"type": "string"
				},
				"availableForDelivery": {
					"type": "boolean"
				},
				"earnings": {
					"type": "string",
					"example": "10.00"
				},
				"assignedOrders": {
					"type": "array",
					"items": {
						"type": "string",
						"format": "uuid"
					}
				},
				"deliveryHistory": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/queries.DeliveryRecordView"
					}
				}
			}
		},
		"queries.CouponView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"code": {
					"type": "string"
				},
				"discountType": {
					"type": "string"
				},
				"discountAmount": {
					"type": "string",
					"example": "10.00"
				},
				"minimumPurchase": {
					"type": "string",
					"example": "10.00"
				},
				"startDate": {
					"type": "string",
					"format": "date-time"
				},
				"endDate": {
					"type": "string",
					"format": "date-time"
				},
				"usageLimit": {
					"type": "integer",
					"x-nullable": true
				},
				"usedCount": {
					"type": "integer"
				},
				"isActive": {
					"type": "boolean"
				}
			}
		},
		"queries.CouponPreview": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"discountType": {
					"type": "string"
				},
				"discountAmount": {
					"type": "string",
					"example": "10.00"
				},
				"discount": {
					"type": "string",
					"example": "10.00"
				},
				"totalAfterDiscount": {
					"type": "string",
					"example": "10.00"
				}
			},
			"required": [
				"code",
				"discountType",
				"discountAmount",
				"discount",
				"totalAfterDiscount"
			]
		},
		"queries.ProductSalesAnalytic": {
			"type": "object",
			"properties": {
				"productId": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"orders": {
					"type": "integer"
				},
				"unitsSold": {
					"type": "integer"
				},
				"revenue": {
					"type": "string",
					"example": "10.00"
				}
			}
		},
		"queries.SellerAnalytics": {
			"type": "object",
			"properties": {
				"totalOrders": {
					"type": "integer"
				},
				"deliveredOrders": {
					"type": "integer"
				},
				"unitsSold": {
					"type": "integer"
				},
				"revenue": {
					"type": "string",
					"example": "10.00"
				},
				"products": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/queries.ProductSalesAnalytic"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Bearer token issued by the auth service",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Order lifecycle, delivery assignment, returns and coupons.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
