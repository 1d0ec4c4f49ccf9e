// Package oauth is the gateway to the identity providers GoFinances supports.
//
// Both providers sit behind one capability, Provider.Authenticate, which
// runs the provider's interactive flow and returns identity Claims. A
// provider reports exactly one of three outcomes:
//
//   - success: Claims with a non-empty ID and a nil error;
//   - cancellation: an error matching common.ErrAuthenticationCancelled;
//   - failure: an error matching common.ErrAuthenticationFailed.
//
// Google uses the browser-redirect implicit grant (BrowserFlow) followed by
// a claims fetch against the userinfo endpoint. Apple uses a platform
// credential request (CredentialRequester). ConsoleBrowserFlow and
// ConsoleCredentialRequester are terminal implementations of the two
// interactive steps.
//
// Access and identity tokens never appear in returned errors.
package oauth
