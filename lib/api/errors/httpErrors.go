package errors

var InvalidRequestError = Error{
	Message: "Invalid request",
	Error:   400,
}

var InvalidVersionError = Error{
	Message: "Invalid version number",
	Error:   400,
}

var VersionHigherThanHeadError = Error{
	Message: "Version number is higher than head",
	Error:   400,
}

func NewInvalidParamError(paramName string) Error {
	return Error{
		Message: "Invalid parameter: " + paramName,
		Error:   400,
	}
}

func NewMissingParamError(paramName string) Error {
	return Error{
		Message: "Missing parameter: " + paramName,
		Error:   400,
	}
}

var GrantNotFoundError = Error{
	Message: "Grant not found",
	Error:   404,
}

var ApplicationNotFoundError = Error{
	Message: "Application not found",
	Error:   404,
}

var ComponentNotFoundError = Error{
	Message: "Component not found",
	Error:   404,
}

var VersionNotFoundError = Error{
	Message: "Version not found",
	Error:   404,
}

var MemberNotFoundError = Error{
	Message: "Team member not found",
	Error:   404,
}

var NotificationNotFoundError = Error{
	Message: "Notification not found",
	Error:   404,
}

var InternalServerError = Error{
	Message: "Internal server error",
	Error:   500,
}

var UnauthorizedError = Error{
	Message: "Unauthorized access",
	Error:   401,
}

var ForbiddenError = Error{
	Message: "Access forbidden",
	Error:   403,
}

var ValidationError = Error{
	Message: "Validation failed",
	Error:   422,
}
