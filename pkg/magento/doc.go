// Package magento provides the public types, interfaces and query builder
// for the Magento 2 REST API client.
//
// The package defines the Client interface and its resource managers, the
// searchCriteria query builder, the wire types for the common Magento
// entities, and the error taxonomy. Construct clients with the
// magentoclient package:
//
//	client, err := magentoclient.New(ctx, &magento.Config{
//		Domain:   "store.example.com",
//		Username: "admin",
//		Password: "secret",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	orders, err := client.Orders().Search(ctx,
//		magento.NewQuery().Since("2024-01-01").SortBy("created_at", "DESC"))
package magento
