package server

func (s *Server) initRoutes() {
	// Token endpoint: no method in the pattern, the handler and CORS middleware
	// answer OPTIONS and reject everything but POST themselves.
	s.RegisterRouteHandler(RouteOAuth2Token, ChainMiddleware(s.Token(), s.APIMiddleware()...))
	s.RegisterRouteHandler(RouteToken, ChainMiddleware(s.Token(), s.APIMiddleware()...))

	s.RegisterRouteHandler("POST "+RouteHello, ChainMiddleware(s.Hello(), s.StdMiddleware()...))
}
