package db

const GrantDoesNotExistError = "grant not found"
const ApplicationDoesNotExistError = "application not found"
const ComponentDoesNotExistError = "component not found"
const ComponentVersionNotFoundError = "component version not found"
const TeamMemberNotFoundError = "team member not found"
const NotificationNotFoundError = "notification not found"
const AccountNotFoundError = "account not found"
