package models

// SSOProfile is the SSO section of a named profile in the AWS shared config file.
type SSOProfile struct {
	Name      string `json:"name" yaml:"name"`
	StartURL  string `json:"startUrl" yaml:"startUrl"`
	Region    string `json:"region" yaml:"region"`
	AccountID string `json:"accountId" yaml:"accountId"`
	RoleName  string `json:"roleName" yaml:"roleName"`
}

type Identity struct {
	Account string `json:"account"`
	Arn     string `json:"arn"`
	UserID  string `json:"userId"`
}
