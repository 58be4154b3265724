// Package details provides the coin detail repository.
//
// Unlike the list repository, any present body counts as success, even one
// whose fields all hold default values. Only a transport error, a non-2xx
// status or a fully absent body yields a Failure.
package details
